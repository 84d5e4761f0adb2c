package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names the colour of every styled token. Values are lipgloss colour
// strings; ANSI indexes render as plain SGR foreground codes.
type Theme struct {
	Name string

	// Plain-text highlight colours
	Error     string // highlight words equal to ERROR
	Warn      string // highlight words equal to WARN or WARNING
	Highlight string // every other highlight word

	// JSON-ish token colours
	Key      string
	Emphasis string // keys listed in the JSON key set
	String   string
	Number   string
	Literal  string // true, false, null
}

// Styles builds lipgloss styles for this theme using r, whose colour profile
// decides which escape sequences are produced.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(c)).
			TabWidth(lipgloss.NoTabConversion)
	}
	return Styles{
		Error:     fg(t.Error),
		Warn:      fg(t.Warn),
		Highlight: fg(t.Highlight),
		Key:       fg(t.Key),
		Emphasis:  fg(t.Emphasis),
		String:    fg(t.String),
		Number:    fg(t.Number),
		Literal:   fg(t.Literal),
	}
}

// WithColors returns a copy of t with the named colours replaced. Names are
// the lower-case field names (error, warn, highlight, key, emphasis, string,
// number, literal).
func (t Theme) WithColors(colors map[string]string) (Theme, error) {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := strings.TrimSpace(colors[name])
		if value == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "error":
			t.Error = value
		case "warn", "warning":
			t.Warn = value
		case "highlight":
			t.Highlight = value
		case "key":
			t.Key = value
		case "emphasis":
			t.Emphasis = value
		case "string":
			t.String = value
		case "number":
			t.Number = value
		case "literal":
			t.Literal = value
		default:
			return t, fmt.Errorf("unknown colour %q", name)
		}
	}
	return t, nil
}

// Styles contains the pre-built styles used while rendering a line.
type Styles struct {
	Error     lipgloss.Style
	Warn      lipgloss.Style
	Highlight lipgloss.Style

	Key      lipgloss.Style
	Emphasis lipgloss.Style
	String   lipgloss.Style
	Number   lipgloss.Style
	Literal  lipgloss.Style
}

// WordStyle picks the highlight style for a configured word by comparing it,
// case-insensitively, against the reserved severities.
func (s Styles) WordStyle(word string) lipgloss.Style {
	switch {
	case strings.EqualFold(word, "ERROR"):
		return s.Error
	case strings.EqualFold(word, "WARN"), strings.EqualFold(word, "WARNING"):
		return s.Warn
	default:
		return s.Highlight
	}
}

// Theme definitions

var themes = map[string]Theme{
	"default": defaultTheme(),
	"bright":  brightTheme(),
}

var themeOrder = []string{"default", "bright"}

// GetTheme returns a theme by name. An empty name selects the default
// palette; an unknown one is an error.
func GetTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return defaultTheme(), nil
	}
	if t, ok := themes[key]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(themeOrder, " or "))
}

// ThemeNames returns all available theme names in display order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// defaultTheme uses the classic 8-colour palette: red errors, yellow
// warnings, cyan for other words.
func defaultTheme() Theme {
	return Theme{
		Name:      "default",
		Error:     "1",
		Warn:      "3",
		Highlight: "6",
		Key:       "4",
		Emphasis:  "5",
		String:    "2",
		Number:    "6",
		Literal:   "3",
	}
}

func brightTheme() Theme {
	return Theme{
		Name:      "bright",
		Error:     "9",
		Warn:      "11",
		Highlight: "14",
		Key:       "12",
		Emphasis:  "13",
		String:    "10",
		Number:    "14",
		Literal:   "11",
	}
}
