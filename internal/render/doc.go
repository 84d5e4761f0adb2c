// Package render styles log lines for a terminal.
//
// # Modes
//
// Every line goes through one of two painters:
//
//   - Plain highlighter: wraps each occurrence of a configured highlight word.
//     Words are matched as exact, case-sensitive substrings; the earliest
//     occurrence wins and ties go to the word registered first. The colour is
//     picked from the word itself: ERROR is red, WARN and WARNING are yellow,
//     anything else is cyan.
//   - JSON-ish colorizer: used only in JSON mode, and only for lines whose
//     first non-blank byte is '{' or '['. It is a lexer, not a parser. Keys
//     (strings followed by ':'), string values, numbers and the literals
//     true/false/null each get their own colour; keys named in the JSON key
//     set get the emphasis colour instead.
//
// # Escapes
//
// Styles are lipgloss styles built on a renderer whose termenv profile is
// pinned to 16-colour ANSI, so each painted token is exactly
//
//	ESC[<code>m token ESC[0m
//
// regardless of what the environment advertises. With colour disabled the
// Renderer copies lines through untouched.
//
// Line terminators are never styled, and a line is written with a single
// Write call.
package render
