package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/orgmeta/internal/config"
	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/entity"
	"github.com/specialistvlad/orgmeta/internal/loader"
	"github.com/specialistvlad/orgmeta/internal/record"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// Records is the loaded universe: one collection per record kind.
type Records struct {
	Contributors map[entity.Key]*record.Contributor
	Teams        map[entity.Key]*record.Team
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW, so a JSON document on stdout is never mixed with logs.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// context attaches the app logger to ctx.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// LoadRecords loads contributors and then teams. The two loads are
// independent; the first failure aborts.
func (a *App) LoadRecords(ctx context.Context) (*Records, error) {
	ctx = a.context(ctx)

	var opts []loader.Option
	if a.config.StrictDuplicates {
		opts = append(opts, loader.WithStrictDuplicates())
	}

	contributors, err := loader.LoadContributors(ctx, a.config.ContributorsPattern, opts...)
	if err != nil {
		return nil, err
	}
	teams, err := loader.LoadTeams(ctx, a.config.TeamsPattern, opts...)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Records loaded.", "contributors", len(contributors), "teams", len(teams))
	return &Records{Contributors: contributors, Teams: teams}, nil
}
