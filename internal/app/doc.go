// Package app provides the orchestration layer for logknife.
//
// # Overview
//
// This package wires together pattern compilation, filtering, rendering and
// the logtail follower. It is the composition root: every input arrives in
// Options and nothing is read from package state.
//
// # Data Flow
//
//	┌──────────────┐
//	│  Follow()    │ Validate everything, then loop
//	└──────┬───────┘
//	       │
//	       ├─────> newPipeline()   Compile patterns, resolve colour and theme
//	       ├─────> tailCount()     -n, or --since converted to a line estimate
//	       ├─────> logtail.Open()  Position at EOF or at the tail offset
//	       └─────> Follower.Run()  Poll until the context is cancelled
//
//	Per line:
//	  filter.Set.Keep ──> render.Renderer.Render ──> one Write to Stdout
//
// Tail runs the same pipeline over logtail.Tail and returns when the file has
// been read.
//
// # Error Handling
//
// Fatal errors are returned before any line is read:
//
//   - *ConfigError: bad pattern, engine, colour mode, theme or theme colour, duration
//     or a missing file argument (exit status 2)
//   - *OpenError: the target cannot be opened (exit status 1)
//
// Once following has started, read and write problems are logged and the loop
// keeps going. ExitCode maps any returned error to the process status.
package app
