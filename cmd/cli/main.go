package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/encryptdecrypt/internal/app"
	"github.com/specialistvlad/encryptdecrypt/internal/cli"
	"github.com/specialistvlad/encryptdecrypt/internal/hcl"
	"github.com/specialistvlad/encryptdecrypt/internal/registry"
)

// main is the entrypoint for the encryptdecrypt application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp is replaced in tests to inject failures.
var newApp = app.NewApp

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A panic while building or running the app, such as a broken registry,
	// becomes a normal error so the user gets a clean message and exit code.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	encryptDecryptApp := newApp(outW, errW, appConfig, hcl.NewLoader())

	return exitCode(encryptDecryptApp.Run(context.Background(), appConfig))
}

// exitCode gives invalid-argument failures found after parsing the same
// exit status as parse errors.
func exitCode(err error) error {
	if errors.Is(err, registry.ErrUnknownAlgorithm) || errors.Is(err, app.ErrJobFile) {
		return &cli.ExitError{Code: cli.ExitCodeInvalidArgument, Message: err.Error()}
	}
	return err
}
