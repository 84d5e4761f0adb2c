package render

import (
	"bytes"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Options configures a Renderer.
type Options struct {
	Highlight []string // literal words, in priority order for ties
	JSON      bool     // colorize lines that look like JSON
	JSONKeys  []string // keys painted with the emphasis colour
	Theme     Theme
	Color     bool // false writes every line verbatim
}

// Renderer writes lines to an output stream, styled according to Options.
// It is not safe for concurrent use.
type Renderer struct {
	w      io.Writer
	color  bool
	json   bool
	styles Styles

	words  [][]byte
	styled []string // pre-rendered words, parallel to words
	keys   map[string]struct{}

	buf bytes.Buffer
}

// New returns a Renderer writing to w. Empty highlight words are dropped.
func New(w io.Writer, opts Options) *Renderer {
	theme := opts.Theme
	if theme.Name == "" {
		theme = defaultTheme()
	}
	r := &Renderer{
		w:      w,
		color:  opts.Color,
		json:   opts.JSON,
		styles: theme.Styles(newStyleRenderer(w, opts.Color)),
	}
	for _, word := range opts.Highlight {
		if word == "" {
			continue
		}
		r.words = append(r.words, []byte(word))
		r.styled = append(r.styled, r.styles.WordStyle(word).Render(word))
	}
	if len(opts.JSONKeys) > 0 {
		r.keys = make(map[string]struct{}, len(opts.JSONKeys))
		for _, k := range opts.JSONKeys {
			r.keys[k] = struct{}{}
		}
	}
	return r
}

// Render writes one raw line, including its terminator if present.
func (r *Renderer) Render(line []byte) error {
	if !r.color {
		_, err := r.w.Write(line)
		return err
	}
	r.buf.Reset()
	if r.json && LooksLikeJSON(line) {
		r.colorizeJSON(line)
	} else {
		r.highlight(line)
	}
	_, err := r.w.Write(r.buf.Bytes())
	return err
}

// LooksLikeJSON reports whether the first non-blank byte of line opens an
// object or array.
func LooksLikeJSON(line []byte) bool {
	trimmed := bytes.TrimLeft(line, " \t\r\n\f\v")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// highlight wraps every occurrence of a highlight word, scanning left to
// right and always taking the earliest match.
func (r *Renderer) highlight(line []byte) {
	if len(r.words) == 0 {
		r.buf.Write(line)
		return
	}
	for len(line) > 0 {
		best, bestPos := -1, -1
		for i, w := range r.words {
			pos := bytes.Index(line, w)
			if pos < 0 {
				continue
			}
			if bestPos < 0 || pos < bestPos {
				best, bestPos = i, pos
			}
		}
		if best < 0 {
			r.buf.Write(line)
			return
		}
		r.buf.Write(line[:bestPos])
		r.buf.WriteString(r.styled[best])
		line = line[bestPos+len(r.words[best]):]
	}
}

func (r *Renderer) paint(style lipgloss.Style, tok []byte) {
	r.buf.WriteString(style.Render(string(tok)))
}
