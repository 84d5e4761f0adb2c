package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinIntervalMS = 10
	MaxSinceLines = 100000
)

// ClampInterval applies the polling floor.
func ClampInterval(ms int) int {
	return max(ms, MinIntervalMS)
}

// ParseSince parses a duration such as 90s, 15m, 2h or 1d. Fractions are
// allowed ("1.5h"); other units are rejected. Windows beyond the range of
// time.Duration saturate at its maximum.
func ParseSince(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q (want <number><s|m|h|d>)", s)
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 's':
		unit = time.Second
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	default:
		return 0, fmt.Errorf("invalid duration unit in %q (want s, m, h or d)", s)
	}

	n, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("invalid duration %q (want <number><s|m|h|d>)", s)
	}
	ns := n * float64(unit)
	if ns >= math.MaxInt64 {
		// Longer than time.Duration can hold; the estimate clamps anyway.
		return time.Duration(math.MaxInt64), nil
	}
	return time.Duration(ns), nil
}

// EstimateLines converts a look-back window into a line count assuming the
// file grows at linesPerSecond. This is an estimate only: no timestamps are
// read, so bursts and quiet periods make it wrong in both directions. The
// result is clamped to [1, MaxSinceLines].
func EstimateLines(d time.Duration, linesPerSecond float64) int {
	est := math.Ceil(d.Seconds() * linesPerSecond)
	if math.IsNaN(est) || est < 1 {
		return 1
	}
	if est > MaxSinceLines {
		return MaxSinceLines
	}
	return int(est)
}
