package logtail

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const tailBlockSize = 4096

// TailOffset returns the offset where the last n lines of r begin. It scans
// backward from size in fixed blocks, counting '\n' bytes; a terminator on
// the very last byte closes the final line rather than starting a new one.
// When the start of the file is reached first the whole file qualifies and
// the offset is 0. n <= 0 returns size.
func TailOffset(r io.ReaderAt, size int64, n int) (int64, error) {
	if n <= 0 || size <= 0 {
		return max(size, 0), nil
	}

	buf := make([]byte, tailBlockSize)
	found := 0
	for end := size; end > 0; {
		start := max(end-tailBlockSize, 0)
		block := buf[:end-start]
		if _, err := r.ReadAt(block, start); err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read block at %d: %w", start, err)
		}
		for i := len(block) - 1; i >= 0; i-- {
			if block[i] != '\n' {
				continue
			}
			pos := start + int64(i)
			if pos == size-1 {
				continue
			}
			found++
			if found == n {
				return pos + 1, nil
			}
		}
		end = start
	}
	return 0, nil
}

// Tail writes the last opts.TailLines lines of the file at path to emit and
// returns. Unlike Follower.Run, a final line without a terminator is emitted
// too. TailLines <= 0 emits nothing.
func Tail(path string, opts Options, emit func(line []byte)) error {
	opts = opts.withDefaults()
	if opts.TailLines <= 0 {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	start, err := TailOffset(file, info.Size(), opts.TailLines)
	if err != nil {
		return fmt.Errorf("tail log: %w", err)
	}
	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("seek log: %w", err)
	}

	lines := newLineReader(file, start, opts.MaxLineBytes)
	for {
		line, err := lines.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read log: %w", err)
		}
		emit(line)
	}
	if rest := lines.flush(); len(rest) > 0 {
		emit(rest)
	}
	return nil
}
