package match

import "unicode/utf8"

type token struct {
	r    rune
	any  bool // '.'
	star bool // followed by '*'
}

func (t token) accepts(r rune) bool {
	return t.any || t.r == r
}

// simplePattern is the compiled form of the restricted grammar. Tokens are
// parsed once; matching only walks them.
type simplePattern struct {
	src       string
	tokens    []token
	anchorBeg bool
	anchorEnd bool
}

func compileSimple(src string) *simplePattern {
	p := &simplePattern{src: src}
	runes := []rune(src)
	i := 0
	if len(runes) > 0 && runes[0] == '^' {
		p.anchorBeg = true
		i = 1
	}
	for i < len(runes) {
		r := runes[i]
		last := i == len(runes)-1
		switch {
		case r == '$' && last:
			p.anchorEnd = true
			i++
		case !last && runes[i+1] == '*':
			p.tokens = append(p.tokens, token{r: r, any: r == '.', star: true})
			i += 2
		default:
			p.tokens = append(p.tokens, token{r: r, any: r == '.'})
			i++
		}
	}
	return p
}

func (p *simplePattern) String() string { return p.src }

// Match reports whether the pattern occurs anywhere in text, or at its start
// when anchored with '^'.
func (p *simplePattern) Match(text string) bool {
	if p.anchorBeg {
		return p.matchHere(p.tokens, text)
	}
	for i := 0; ; {
		if p.matchHere(p.tokens, text[i:]) {
			return true
		}
		if i == len(text) {
			return false
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
}

// matchHere reports whether toks match a prefix of text. Every call either
// consumes a token or returns, so recursion depth is bounded by len(toks)
// plus the text length.
func (p *simplePattern) matchHere(toks []token, text string) bool {
	if len(toks) == 0 {
		return !p.anchorEnd || text == ""
	}
	t := toks[0]
	if t.star {
		return p.matchStar(t, toks[1:], text)
	}
	if text == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(text)
	if !t.accepts(r) {
		return false
	}
	return p.matchHere(toks[1:], text[size:])
}

// matchStar consumes the longest run t accepts, then backs off one rune at a
// time until the rest of the pattern matches.
func (p *simplePattern) matchStar(t token, rest []token, text string) bool {
	end := 0
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !t.accepts(r) {
			break
		}
		end += size
	}
	for {
		if p.matchHere(rest, text[end:]) {
			return true
		}
		if end == 0 {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(text[:end])
		end -= size
	}
}
