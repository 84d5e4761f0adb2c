package app

import (
	"github.com/rs/zerolog"

	"github.com/logknife/logknife/internal/filter"
	"github.com/logknife/logknife/internal/match"
	"github.com/logknife/logknife/internal/render"
)

// pipeline is the per-line path: filter, then render straight to stdout. The
// renderer makes one Write per line, so a failed write costs only that line.
type pipeline struct {
	filter filter.Set
	render *render.Renderer
	log    zerolog.Logger
	failed int
}

func newPipeline(opts Options) (*pipeline, error) {
	engine, err := match.ParseEngine(opts.Engine)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	include, err := match.CompileAll(engine, opts.Include)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	exclude, err := match.CompileAll(engine, opts.Exclude)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	mode, err := render.ParseColorMode(opts.Color)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	theme, err := render.GetTheme(opts.Theme)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	theme, err = theme.WithColors(opts.Colors)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	return &pipeline{
		filter: filter.Set{Include: include, Exclude: exclude},
		render: render.New(opts.Stdout, render.Options{
			Highlight: opts.Highlight,
			JSON:      opts.JSON,
			JSONKeys:  opts.JSONKeys,
			Theme:     theme,
			Color:     render.ColorEnabled(opts.Stdout, mode),
		}),
		log: *opts.Logger,
	}, nil
}

// handle runs one line through the pipeline. Output errors drop the line and
// are logged; following never stops on them.
func (p *pipeline) handle(line []byte) {
	if !p.filter.Keep(line) {
		return
	}
	err := p.render.Render(line)
	if err == nil {
		return
	}
	p.failed++
	ev := p.log.Debug()
	if p.failed == 1 {
		ev = p.log.Warn()
	}
	ev.Err(err).Int("failed_writes", p.failed).Msg("writing output failed, line dropped")
}
