package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled include/exclude expression.
type Pattern interface {
	Match(text string) bool
	String() string
}

// Engine selects the implementation behind Compile.
type Engine int

const (
	// EngineSimple is the built-in ^ $ . * matcher.
	EngineSimple Engine = iota
	// EngineRegexp delegates to Go's RE2 regexp package.
	EngineRegexp
)

func (e Engine) String() string {
	switch e {
	case EngineRegexp:
		return "regexp"
	default:
		return "simple"
	}
}

// ParseEngine maps a config or flag value to an Engine. Empty means simple.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple", "builtin":
		return EngineSimple, nil
	case "regexp", "regex", "re2":
		return EngineRegexp, nil
	default:
		return EngineSimple, fmt.Errorf("unknown match engine %q (want simple or regexp)", name)
	}
}

// PatternError reports a pattern the selected engine rejected.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Compile builds a Pattern using the given engine. The simple engine accepts
// every string.
func Compile(engine Engine, pattern string) (Pattern, error) {
	switch engine {
	case EngineRegexp:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		return regexpPattern{re: re}, nil
	default:
		return compileSimple(pattern), nil
	}
}

// CompileAll compiles patterns in order, stopping at the first rejection.
func CompileAll(engine Engine, patterns []string) ([]Pattern, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := Compile(engine, p)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

type regexpPattern struct {
	re *regexp.Regexp
}

func (p regexpPattern) Match(text string) bool { return p.re.MatchString(text) }

func (p regexpPattern) String() string { return p.re.String() }
