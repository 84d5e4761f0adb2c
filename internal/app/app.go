package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/logknife/logknife/internal/config"
	"github.com/logknife/logknife/internal/logtail"
)

// DefaultTailLines is what the tail command prints without -n or --since.
const DefaultTailLines = 10

// Options configure one run. Every input is explicit; nothing is read from
// package state.
type Options struct {
	Path string

	Include []string
	Exclude []string
	Engine  string // simple or regexp

	Highlight []string
	JSON      bool
	JSONKeys  []string
	Color     string // auto, always or never
	Theme     string
	Colors    map[string]string

	Interval       time.Duration
	TailLines      int     // lines to print first; negative for none
	Since          string  // look-back window, converted to an estimated line count
	LinesPerSecond float64 // rate assumed by Since
	MaxLineBytes   int
	Notify         bool

	Stdout io.Writer
	Logger *zerolog.Logger
}

// Follow prints new lines of opts.Path until ctx is cancelled. When a tail
// count (or Since) is set, those lines are printed first and following
// continues from there.
func Follow(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	p, err := newPipeline(opts)
	if err != nil {
		return err
	}
	n, err := tailCount(opts)
	if err != nil {
		return err
	}

	f, err := logtail.Open(opts.Path, logtail.Options{
		PollInterval: opts.Interval,
		MaxLineBytes: opts.MaxLineBytes,
		TailLines:    n,
		Notify:       opts.Notify,
		Logger:       opts.Logger,
	})
	if err != nil {
		return &OpenError{Path: opts.Path, Err: err}
	}
	defer f.Close()

	return f.Run(ctx, p.handle)
}

// Tail prints the last lines of opts.Path once and returns. Without TailLines
// or Since it prints DefaultTailLines lines.
func Tail(opts Options) error {
	opts = opts.withDefaults()

	p, err := newPipeline(opts)
	if err != nil {
		return err
	}
	n, err := tailCount(opts)
	if err != nil {
		return err
	}
	if opts.TailLines == 0 && opts.Since == "" {
		n = DefaultTailLines
	}

	err = logtail.Tail(opts.Path, logtail.Options{TailLines: n, MaxLineBytes: opts.MaxLineBytes}, p.handle)
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "open" {
		return &OpenError{Path: opts.Path, Err: err}
	}
	return err
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Interval > 0 {
		o.Interval = time.Duration(config.ClampInterval(int(o.Interval.Milliseconds()))) * time.Millisecond
	}
	return o
}

// tailCount resolves how many existing lines to print first. An explicit
// count wins over Since; a negative count means none.
func tailCount(opts Options) (int, error) {
	if opts.Path == "" {
		return 0, &ConfigError{Err: errors.New("missing file argument")}
	}
	if opts.TailLines != 0 || opts.Since == "" {
		if opts.TailLines != 0 && opts.Since != "" {
			opts.Logger.Debug().Int("lines", opts.TailLines).Msg("explicit line count overrides --since")
		}
		return max(opts.TailLines, 0), nil
	}

	d, err := config.ParseSince(opts.Since)
	if err != nil {
		return 0, &ConfigError{Err: err}
	}
	rate := opts.LinesPerSecond
	if rate <= 0 {
		rate = config.Default().LinesPerSecond
	}
	n := config.EstimateLines(d, rate)
	opts.Logger.Debug().
		Str("since", opts.Since).
		Float64("lines_per_second", rate).
		Int("estimated_lines", n).
		Msg("converted look-back window to an approximate line count")
	return n, nil
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	var cfgErr *ConfigError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cfgErr):
		return 2
	default:
		return 1
	}
}

// ConfigError reports invalid configuration detected before any file is read.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// OpenError reports that the target file could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
