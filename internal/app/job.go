package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/encryptdecrypt/internal/cipher"
	"github.com/specialistvlad/encryptdecrypt/internal/ctxlog"
	"github.com/specialistvlad/encryptdecrypt/internal/fsutil"
)

// Job is a single cipher run: the chosen cipher bound to its key, the
// direction, the materialised input and where the result goes.
type Job struct {
	Algorithm string
	Mode      cipher.Mode
	Input     string
	OutPath   string

	cipher cipher.Cipher
}

// NewJob resolves the algorithm and reads the input. An unknown algorithm
// fails with registry.ErrUnknownAlgorithm and an unreadable input file with
// fsutil.ErrFileRead; in both cases nothing is written.
func (a *App) NewJob(ctx context.Context, cfg *Config) (*Job, error) {
	_, logger := ctxlog.With(ctx, "alg", cfg.Algorithm)

	registered, err := a.registry.Lookup(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	logger.Debug("Cipher selected.", "description", registered.Description)

	input := cfg.Data
	if cfg.FromFile() {
		logger.Debug("Reading input file.", "path", cfg.InPath)
		input, err = fsutil.ReadFileAsString(cfg.InPath)
		if err != nil {
			return nil, err
		}
	}

	mode := cipher.Mode(cfg.Mode)
	if !mode.Known() {
		logger.Warn("Unrecognised mode, decrypting.", "mode", cfg.Mode)
	}

	return &Job{
		Algorithm: cfg.Algorithm,
		Mode:      mode,
		Input:     input,
		OutPath:   cfg.OutPath,
		cipher:    registered.New(cfg.Key),
	}, nil
}

// Operate applies the cipher. Without an output path the result is returned
// as is; otherwise it is written to OutPath and a confirmation is returned.
func (j *Job) Operate(ctx context.Context) (string, error) {
	_, logger := ctxlog.With(ctx, "alg", j.Algorithm, "mode", string(j.Mode))
	logger.Debug("Starting operate data.", "source", j.Input)

	result, err := cipher.Apply(j.cipher, j.Mode, j.Input)
	if err != nil {
		return "", fmt.Errorf("%s cipher failed: %w", j.Algorithm, err)
	}

	if j.OutPath == "" {
		return result, nil
	}

	if err := fsutil.WriteFile(j.OutPath, result); err != nil {
		return "", err
	}
	logger.Info("Saved cipher output.", "path", j.OutPath, "bytes", len(result))
	return "Saved to file " + j.OutPath, nil
}
