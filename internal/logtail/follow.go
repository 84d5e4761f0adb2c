package logtail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

const (
	DefaultPollInterval = 200 * time.Millisecond
	MinPollInterval     = 10 * time.Millisecond
	DefaultMaxLineBytes = 8192
	minMaxLineBytes     = 16
)

// Options configure a Follower or a one-shot Tail.
type Options struct {
	PollInterval time.Duration // wait between polls once drained; floored at MinPollInterval
	MaxLineBytes int           // longer lines are emitted in pieces of this size
	TailLines    int           // start this many lines before the end; 0 starts at the end
	Notify       bool          // also wake on file system events
	Logger       *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	o.PollInterval = max(o.PollInterval, MinPollInterval)
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}
	o.MaxLineBytes = max(o.MaxLineBytes, minMaxLineBytes)
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Follower reads a file as it grows, like tail -f. It owns its file handle and
// is driven by a single goroutine.
type Follower struct {
	path     string
	opts     Options
	log      zerolog.Logger
	file     *os.File
	lines    *lineReader
	lastSize int64 // -1 when unknown
	notify   *notifier
}

// Open opens path and positions the follower at the end of the file, or at
// the start of the last opts.TailLines lines.
func Open(path string, opts Options) (*Follower, error) {
	opts = opts.withDefaults()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	size := fileSize(file)
	start := size
	if size < 0 {
		if start, err = file.Seek(0, io.SeekEnd); err != nil {
			file.Close()
			return nil, fmt.Errorf("seek log: %w", err)
		}
	} else if opts.TailLines > 0 {
		if start, err = TailOffset(file, size, opts.TailLines); err != nil {
			file.Close()
			return nil, fmt.Errorf("tail log: %w", err)
		}
	}
	if _, err := file.Seek(start, io.SeekStart); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek log: %w", err)
	}

	f := &Follower{
		path:     path,
		opts:     opts,
		log:      opts.Logger.With().Str("path", path).Logger(),
		file:     file,
		lines:    newLineReader(file, start, opts.MaxLineBytes),
		lastSize: size,
	}
	if opts.Notify {
		n, err := newNotifier(path, f.log)
		if err != nil {
			f.log.Warn().Err(err).Msg("file notifications unavailable, polling only")
		} else {
			f.notify = n
		}
	}
	f.log.Debug().
		Int64("offset", start).
		Str("size", humanSize(size)).
		Dur("interval", opts.PollInterval).
		Msg("following")
	return f, nil
}

// Close releases the file handle and any notification watch.
func (f *Follower) Close() error {
	var errs []error
	if f.notify != nil {
		errs = append(errs, f.notify.Close())
	}
	errs = append(errs, f.file.Close())
	return errors.Join(errs...)
}

// Run polls until ctx is cancelled. Each cycle emits every complete line
// available, checks for truncation or replacement of the file, and then
// waits for the poll interval (or a notification). The line passed to emit
// is only valid for the duration of the call.
func (f *Follower) Run(ctx context.Context, emit func(line []byte)) error {
	timer := time.NewTimer(f.opts.PollInterval)
	defer timer.Stop()

	for {
		f.Drain(emit)
		f.checkFile()

		timer.Reset(f.opts.PollInterval)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-f.wake():
		}
	}
}

// Drain emits every complete line currently available and returns how many
// were emitted. Read errors end the drain like end of data does.
func (f *Follower) Drain(emit func(line []byte)) int {
	n := 0
	for {
		line, err := f.lines.next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				f.log.Debug().Err(err).Msg("read failed, retrying next poll")
			}
			return n
		}
		emit(line)
		n++
	}
}

// checkFile runs at end of data. A file that shrank, or is now shorter than
// what was already read, is read again from the start; a path that names a
// different file than the open handle is reopened.
func (f *Follower) checkFile() {
	if f.reopenIfReplaced() {
		return
	}
	size := fileSize(f.file)
	if size >= 0 && ((f.lastSize >= 0 && size < f.lastSize) || size < f.lines.offset) {
		f.log.Warn().
			Str("was", humanSize(f.lastSize)).
			Str("now", humanSize(size)).
			Msg("file truncated, reading from start")
		f.rewind()
	}
	f.lastSize = size
}

func (f *Follower) rewind() {
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		f.log.Debug().Err(err).Msg("rewind failed")
		return
	}
	f.lines.reset(f.file, 0)
}

// reopenIfReplaced handles rotation by rename or delete-and-recreate. While
// the path is missing the old handle is kept.
func (f *Follower) reopenIfReplaced() bool {
	onDisk, err := os.Stat(f.path)
	if err != nil {
		return false
	}
	current, err := f.file.Stat()
	if err != nil || os.SameFile(onDisk, current) {
		return false
	}

	next, err := os.Open(f.path)
	if err != nil {
		f.log.Debug().Err(err).Msg("reopen failed")
		return false
	}
	f.file.Close()
	f.file = next
	f.lines.reset(next, 0)
	f.lastSize = fileSize(next)
	f.log.Warn().Str("size", humanSize(f.lastSize)).Msg("file replaced, reading new file from start")
	return true
}

func (f *Follower) wake() <-chan struct{} {
	if f.notify == nil {
		return nil
	}
	return f.notify.C
}

func fileSize(file *os.File) int64 {
	info, err := file.Stat()
	if err != nil {
		return -1
	}
	return info.Size()
}

func humanSize(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}
