// Package filter decides which lines survive the include/exclude pass.
package filter

import (
	"bytes"

	"github.com/logknife/logknife/internal/match"
)

// Set holds the ordered include and exclude patterns for a run.
type Set struct {
	Include []match.Pattern
	Exclude []match.Pattern
}

// Empty reports whether the set lets every line through.
func (s Set) Empty() bool {
	return len(s.Include) == 0 && len(s.Exclude) == 0
}

// Keep reports whether line should be emitted. Trailing line terminators are
// ignored for matching. With includes configured, at least one must match;
// any matching exclude drops the line regardless of includes.
func (s Set) Keep(line []byte) bool {
	if s.Empty() {
		return true
	}
	text := string(TrimEOL(line))

	if len(s.Include) > 0 && !anyMatch(s.Include, text) {
		return false
	}
	return !anyMatch(s.Exclude, text)
}

// ShouldEmit is Keep without building a Set.
func ShouldEmit(line []byte, include, exclude []match.Pattern) bool {
	return Set{Include: include, Exclude: exclude}.Keep(line)
}

// TrimEOL strips any trailing '\n' and '\r' bytes.
func TrimEOL(line []byte) []byte {
	return bytes.TrimRight(line, "\r\n")
}

func anyMatch(patterns []match.Pattern, text string) bool {
	for _, p := range patterns {
		if p.Match(text) {
			return true
		}
	}
	return false
}
