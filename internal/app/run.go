package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/encryptdecrypt/internal/ctxlog"
)

// ErrJobFile is returned when the job file cannot be loaded.
var ErrJobFile = errors.New("invalid job file")

// Run executes one cipher job based on the provided configuration and prints
// the job's return value on its own line.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cfg, err := a.resolveConfig(ctx, cfg)
	if err != nil {
		return err
	}

	job, err := a.NewJob(ctx, cfg)
	if err != nil {
		return err
	}

	out, err := job.Operate(ctx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(a.outW, out); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveConfig merges the job file, when one is configured, under the
// command-line settings.
func (a *App) resolveConfig(ctx context.Context, cfg *Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return cfg, nil
	}
	if a.loader == nil {
		return nil, fmt.Errorf("%w: no loader configured for %s", ErrJobFile, cfg.ConfigPath)
	}

	model, err := a.loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJobFile, err)
	}
	a.logger.Debug("Job file merged.", "path", cfg.ConfigPath, "settings", model.Set())

	return cfg.Merge(model), nil
}
