// Package config loads logknife defaults from a TOML file and converts the
// user-facing duration and interval values.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/logknife/config.toml
//  3. If the file doesn't exist, use built-in defaults
//  4. Fields that are missing, empty or zero keep their defaults
//
// Command-line flags always win over the file.
//
// # TOML Format
//
//	interval_ms = 200         # poll interval, floored at 10
//	lines_per_second = 10     # rate assumed by --since
//	max_line_bytes = 8192     # longer lines are split
//	engine = "simple"         # or "regexp"
//	color = "auto"            # auto, always, never
//	theme = "default"         # or "bright"
//	highlight = ["ERROR", "WARN"]
//	json_keys = ["level", "msg"]
//
//	[colors]                  # per-token overrides of the theme
//	error = "9"
//	key = "12"
//
// # Since Estimates
//
// --since has no access to timestamps. EstimateLines turns the window into a
// line count by assuming a steady write rate, clamped to [1, 100000]. It is a
// heuristic and is documented to users as one.
package config
