package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/logknife/logknife/internal/app"
	"github.com/logknife/logknife/internal/config"
	"github.com/logknife/logknife/internal/render"
)

// flags holds the raw command-line values shared by follow and tail.
type flags struct {
	configPath string
	verbose    bool

	include   []string
	exclude   []string
	engine    string
	highlight []string
	json      bool
	jsonKeys  []string
	color     string
	theme     string

	intervalMS     int
	lines          int
	since          string
	linesPerSecond float64
	maxLineBytes   int
	notify         bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "logknife",
		Short: "Follow a log file, filter its lines and colour what matters",
		Long: `logknife prints the lines of a growing log file, keeping or dropping them
with small patterns and colouring highlighted words or JSON tokens.

Examples:
  logknife follow /var/log/app.log --include ERROR --exclude healthz
  logknife follow app.log -n 50 --json --json-key level
  logknife tail app.log --since 5m --highlight WARN`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return &app.ConfigError{Err: errors.New("missing command (want follow or tail)")}
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &app.ConfigError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.StringArrayVar(&f.include, "include", nil, "keep lines matching pattern (repeatable, any match keeps)")
	pf.StringArrayVar(&f.exclude, "exclude", nil, "drop lines matching pattern (repeatable, wins over --include)")
	pf.StringVar(&f.engine, "engine", "", "pattern engine: simple or regexp")
	pf.StringArrayVar(&f.highlight, "highlight", nil, "colour every occurrence of word (repeatable)")
	pf.BoolVar(&f.json, "json", false, "colour tokens of lines that look like JSON objects")
	pf.StringArrayVar(&f.jsonKeys, "json-key", nil, "emphasize this JSON key (repeatable)")
	pf.StringVar(&f.color, "color", "", "colour output: auto, always or never")
	pf.StringVar(&f.theme, "theme", "", "colour theme: "+strings.Join(render.ThemeNames(), " or "))
	pf.IntVarP(&f.lines, "lines", "n", 0, "print the last N lines first")
	pf.StringVar(&f.since, "since", "", "print roughly the lines of the last window (e.g. 30s, 5m, 2h, 1d)")
	pf.Float64Var(&f.linesPerSecond, "lines-per-second", 0, "write rate assumed by --since")
	pf.IntVar(&f.maxLineBytes, "max-line-bytes", 0, "split lines longer than this")

	follow := &cobra.Command{
		Use:   "follow <file>",
		Short: "Print new lines as they are appended",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			return app.Follow(cmd.Context(), opts)
		},
	}
	follow.Flags().IntVar(&f.intervalMS, "interval", 0, "poll interval in milliseconds (minimum 10)")
	follow.Flags().BoolVar(&f.notify, "notify", false, "wake on filesystem events as well as on the poll timer")

	tail := &cobra.Command{
		Use:   "tail <file>",
		Short: "Print the last lines and exit",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			return app.Tail(opts)
		},
	}

	root.AddCommand(follow, tail)
	return root
}

// usageArgs marks argument errors as configuration errors so they exit 2.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &app.ConfigError{Err: err}
		}
		return nil
	}
}

// options merges the config file with the flags the user actually set.
func (f *flags) options(cmd *cobra.Command, path string) (app.Options, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return app.Options{}, &app.ConfigError{Err: err}
	}

	log := app.NewLogger(os.Stderr, f.verbose)
	changed := cmd.Flags().Changed

	opts := app.Options{
		Path:           path,
		Include:        f.include,
		Exclude:        f.exclude,
		Engine:         cfg.Engine,
		Highlight:      cfg.Highlight,
		JSON:           f.json,
		JSONKeys:       cfg.JSONKeys,
		Color:          cfg.Color,
		Theme:          cfg.Theme,
		Colors:         cfg.Colors,
		Interval:       time.Duration(cfg.IntervalMS) * time.Millisecond,
		TailLines:      f.lines,
		Since:          f.since,
		LinesPerSecond: cfg.LinesPerSecond,
		MaxLineBytes:   cfg.MaxLineBytes,
		Notify:         f.notify,
		Stdout:         cmd.OutOrStdout(),
		Logger:         &log,
	}
	if changed("engine") {
		opts.Engine = f.engine
	}
	if changed("highlight") {
		opts.Highlight = f.highlight
	}
	if changed("json-key") {
		opts.JSONKeys = f.jsonKeys
	}
	if changed("color") {
		opts.Color = f.color
	}
	if changed("theme") {
		opts.Theme = f.theme
	}
	if changed("interval") {
		opts.Interval = time.Duration(config.ClampInterval(f.intervalMS)) * time.Millisecond
	}
	if changed("lines-per-second") {
		opts.LinesPerSecond = f.linesPerSecond
	}
	if changed("max-line-bytes") {
		opts.MaxLineBytes = f.maxLineBytes
	}
	if changed("lines") && f.lines <= 0 {
		// -n 0 means start at the end even when --since is set.
		opts.TailLines = -1
	}

	log.Debug().
		Str("path", path).
		Str("engine", opts.Engine).
		Str("color", opts.Color).
		Dur("interval", opts.Interval).
		Msg("starting")
	return opts, nil
}
