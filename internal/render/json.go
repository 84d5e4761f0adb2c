package render

import "bytes"

var jsonLiterals = [][]byte{[]byte("true"), []byte("false"), []byte("null")}

// colorizeJSON is a single lexical pass over line. It never validates, so
// truncated or malformed JSON is painted as far as it goes and the rest is
// copied through.
func (r *Renderer) colorizeJSON(line []byte) {
	body := bytes.TrimRight(line, "\r\n")
	eol := line[len(body):]

	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == '"':
			end, closed := scanString(body, i)
			style := r.styles.String
			if isKey(body, end) {
				style = r.styles.Key
				if closed && r.emphasized(body[i+1:end-1]) {
					style = r.styles.Emphasis
				}
			}
			r.paint(style, body[i:end])
			i = end
			continue

		case c == '-' || isDigit(c):
			if end := scanNumber(body, i); end > i {
				r.paint(r.styles.Number, body[i:end])
				i = end
				continue
			}

		case c == 't' || c == 'f' || c == 'n':
			if n := literalAt(body, i); n > 0 {
				r.paint(r.styles.Literal, body[i:i+n])
				i += n
				continue
			}
		}
		r.buf.WriteByte(c)
		i++
	}
	r.buf.Write(eol)
}

func (r *Renderer) emphasized(key []byte) bool {
	if len(r.keys) == 0 {
		return false
	}
	_, ok := r.keys[string(key)]
	return ok
}

// scanString returns the index just past the string opened at b[start], and
// whether a closing quote was found. Backslash escapes the next byte.
func scanString(b []byte, start int) (int, bool) {
	for j := start + 1; j < len(b); j++ {
		switch b[j] {
		case '\\':
			j++
		case '"':
			return j + 1, true
		}
	}
	return len(b), false
}

// isKey reports whether the next non-blank byte at or after pos is ':'.
func isKey(b []byte, pos int) bool {
	for ; pos < len(b); pos++ {
		switch b[pos] {
		case ' ', '\t':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// scanNumber returns the end of a number starting at b[start], or start when
// there is none: -?digits(.digits)?([eE][+-]?digits)?
func scanNumber(b []byte, start int) int {
	j := start
	if b[j] == '-' {
		j++
	}
	digits := j
	j = skipDigits(b, j)
	if j == digits {
		return start
	}
	if j+1 < len(b) && b[j] == '.' && isDigit(b[j+1]) {
		j = skipDigits(b, j+1)
	}
	if j < len(b) && (b[j] == 'e' || b[j] == 'E') {
		k := j + 1
		if k < len(b) && (b[k] == '+' || b[k] == '-') {
			k++
		}
		if k < len(b) && isDigit(b[k]) {
			j = skipDigits(b, k)
		}
	}
	return j
}

func skipDigits(b []byte, j int) int {
	for j < len(b) && isDigit(b[j]) {
		j++
	}
	return j
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func literalAt(b []byte, i int) int {
	for _, lit := range jsonLiterals {
		if bytes.HasPrefix(b[i:], lit) {
			return len(lit)
		}
	}
	return 0
}
