// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrFileRead is returned when an input file is missing or unreadable.
	ErrFileRead = errors.New("cannot read file")
	// ErrFileWrite is returned when an output file cannot be written.
	ErrFileWrite = errors.New("cannot write file")
)

// ReadFileAsString reads the whole file at path and returns its content as
// text. The bytes are returned untouched; no decoding or newline trimming
// is applied.
func ReadFileAsString(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no input path given", ErrFileRead)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileRead, path, err)
	}
	return string(content), nil
}

// WriteFile creates or truncates the file at path and writes text to it
// exactly as given.
func WriteFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrFileWrite, path, err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("%w %q: %w", ErrFileWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrFileWrite, path, err)
	}
	return nil
}
