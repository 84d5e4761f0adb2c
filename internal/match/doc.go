// Package match compiles include/exclude expressions into reusable matchers.
//
// The built-in engine understands a deliberately small grammar:
//
//	^   anchors the match at the start of the text (first character only)
//	$   anchors the match at the end of the text (last character only)
//	.   matches any single character
//	c*  matches zero or more repetitions of c; .* matches any run
//
// Every other character, including a '^' or '$' in any other position, is
// literal. There is no escaping and no character classes, alternation or
// bounded repetition, so the built-in engine accepts every string. Matching
// is case-sensitive and works on UTF-8 runes.
//
// EngineRegexp swaps in Go's regexp package behind the same Pattern
// interface. It agrees with the built-in engine on the grammar above and
// rejects malformed expressions with a *PatternError.
//
// Patterns are compiled once at configuration time and shared for the life of
// the process. The built-in Match does not allocate.
package match
