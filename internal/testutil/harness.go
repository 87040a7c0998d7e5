// Package testutil provides a harness for running the whole application the
// way the binary does, from raw arguments to captured output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/encryptdecrypt/internal/app"
	"github.com/specialistvlad/encryptdecrypt/internal/cli"
	"github.com/specialistvlad/encryptdecrypt/internal/hcl"
	"github.com/stretchr/testify/require"
)

// DirPlaceholder is replaced by the run's temporary directory in arguments
// and job file contents.
const DirPlaceholder = "{dir}"

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a run.
type HarnessResult struct {
	Stdout     string
	Stderr     string
	Err        error
	ShouldExit bool
	Dir        string
}

// ReadFile returns the content of name inside the run's directory.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(content)
}

// Run writes files into a fresh temporary directory, replaces DirPlaceholder
// in args and file contents with that directory, then parses the arguments
// and runs the app with the compiled-in modules.
func Run(t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		content = strings.ReplaceAll(content, DirPlaceholder, dir)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = strings.ReplaceAll(arg, DirPlaceholder, dir)
	}

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	result := &HarnessResult{Dir: dir}
	t.Cleanup(func() {
		if os.Getenv("ENCDEC_TEST_LOGS") == "true" {
			t.Logf("--- Log Output for %s ---\n%s", t.Name(), stderr.String())
		}
	})

	cfg, shouldExit, err := cli.Parse(expanded, stderr)
	if err != nil || shouldExit {
		result.Err = err
		result.ShouldExit = shouldExit
		result.Stderr = stderr.String()
		return result
	}

	a := app.NewApp(stdout, stderr, cfg, hcl.NewLoader())
	result.Err = a.Run(context.Background(), cfg)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}
