// Package logtail reads log files the way tail and tail -f do.
//
// # Overview
//
// Two entry points share one line splitter:
//
//  1. Tail: print the last N lines of a file and return
//  2. Follower: keep reading a file as it grows, surviving truncation and
//     rotation
//
// # Finding the Last N Lines
//
// TailOffset never reads the file front to back. It walks backward from the
// end in 4 KiB blocks and counts newlines from the end of each block:
//
//	1. Start at size, step back one block (or to 0)
//	2. Scan the block from its last byte toward its first
//	3. Ignore a newline on the very last byte of the file (it ends the
//	   final line, it does not start another)
//	4. The n-th newline found marks the start: return its offset + 1
//	5. Reaching offset 0 first means the file has n lines or fewer: return 0
//
// Memory use is one block regardless of file size.
//
// # Following
//
// A Follower opens the file once and starts at the end, or at the offset
// TailOffset computed when Options.TailLines is set. Run then loops:
//
//   - Drain: emit every complete line currently in the file, without
//     sleeping between lines
//   - Check: compare the file size with the size seen last time. A smaller
//     file, or one shorter than what was already consumed, was truncated,
//     and reading restarts at offset 0. If the path now names a different
//     file (renamed away and recreated), the new file is opened and read
//     from the start
//   - Wait: sleep for Options.PollInterval, or less when Options.Notify is
//     set and fsnotify reports a change to the path
//
// Run only returns when its context is cancelled. End of data and read
// errors are not failures; they end the current drain and the next poll
// tries again.
//
// # Line Boundaries
//
// Bytes after the last newline are held back until the newline arrives, so a
// writer caught mid-line is never shown half a line. Only the one-shot Tail
// emits that remainder.
//
// Lines longer than Options.MaxLineBytes (default 8192) are emitted in pieces
// of exactly that many bytes; only the last piece carries the newline. A line
// whose content is exactly MaxLineBytes long therefore produces the content
// and then a piece holding only "\n". Each piece is filtered and rendered on
// its own, which can change which pieces of a very long line are shown.
//
// # Concurrency
//
// A Follower is driven by one goroutine. The optional notifier runs a helper
// goroutine that only posts wake-up tokens.
package logtail
