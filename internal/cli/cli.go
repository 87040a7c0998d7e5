package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/encryptdecrypt/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCodeInvalidArgument is the exit code for unusable command-line input.
const ExitCodeInvalidArgument = 2

// decimalInt is a flag.Value that only accepts base-10 integers, so "010"
// is ten rather than octal eight.
type decimalInt int

func (d *decimalInt) String() string { return strconv.Itoa(int(*d)) }

func (d *decimalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return errors.New("value out of range")
		}
		return errors.New("not a decimal integer")
	}
	*d = decimalInt(v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// A flag given more than once keeps its last value.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("encryptdecrypt", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
encryptdecrypt - Encrypt or decrypt text with a simple substitution cipher.

Usage:
  encryptdecrypt [options]

Input is taken from -data when it is non-empty, otherwise from the file
given by -in. The result is printed unless -out names a file to write.
Every argument must be one of the options below; any other token, including
a bare word, is rejected instead of skipped.

Algorithms: %s

Options:
`, strings.Join(app.Algorithms(), ", "))
		flagSet.PrintDefaults()
	}

	var key decimalInt
	modeFlag := flagSet.String("mode", app.DefaultMode, "Direction: 'enc' encrypts, anything else decrypts.")
	algFlag := flagSet.String("alg", app.DefaultAlgorithm, "Cipher algorithm: 'shift' or 'unicode'.")
	dataFlag := flagSet.String("data", "", "Literal input text. Takes precedence over -in.")
	inFlag := flagSet.String("in", "", "Path of the file to read input from.")
	flagSet.Var(&key, "key", "Integer shift amount (decimal).")
	outFlag := flagSet.String("out", "", "Path of the file to write the result to.")
	configFlag := flagSet.String("config", "", "Optional HCL job file with default settings.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitCodeInvalidArgument, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    ExitCodeInvalidArgument,
			Message: fmt.Sprintf("unexpected argument %q: all input is given through flags", flagSet.Arg(0)),
		}
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	config, err := app.NewConfig(app.Config{
		Mode:       *modeFlag,
		Algorithm:  *algFlag,
		Data:       *dataFlag,
		InPath:     *inFlag,
		Key:        int(key),
		OutPath:    *outFlag,
		ConfigPath: *configFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Explicit:   explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitCodeInvalidArgument, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
