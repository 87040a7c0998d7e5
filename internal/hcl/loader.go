package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/encryptdecrypt/internal/config"
	"github.com/specialistvlad/encryptdecrypt/internal/ctxlog"
	"github.com/specialistvlad/encryptdecrypt/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL job file loader that evaluates expressions
// against the process environment.
func NewLoader() *Loader {
	return &Loader{environ: processEnv}
}

// Load parses the job file at path and translates it into the model. When
// path is a directory, every .hcl file below it is loaded in lexical order
// and later files override settings from earlier ones.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := l.findAllHCLFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file %s: %w", file, err)
		}

		fileModel, err := l.parse(src, file)
		if err != nil {
			return nil, err
		}
		model = model.Overlay(resolvePaths(fileModel, filepath.Dir(file)))
	}

	logger.Debug("HCL loading complete.", "path", path, "settings", model.Set())
	return model, nil
}

// findAllHCLFiles returns path itself for a file, or every .hcl file below
// it for a directory. A directory without any .hcl file is an error.
func (l *Loader) findAllHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl job files found in %s", path)
	}
	return files, nil
}

// parse decodes HCL source; filename is used only in diagnostics.
func (l *Loader) parse(src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse job file %s: %w", filename, diags)
	}

	var root jobFile
	diags = gohcl.DecodeBody(file.Body, newEvalContext(l.environ()), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode job file %s: %w", filename, diags)
	}

	return translate(&root), nil
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(f *jobFile) *config.Model {
	return &config.Model{
		Mode:      f.Mode,
		Algorithm: f.Algorithm,
		Data:      f.Data,
		InPath:    f.InPath,
		Key:       f.Key,
		OutPath:   f.OutPath,
	}
}

// resolvePaths makes relative in and out paths relative to dir, the
// directory of the job file that set them.
func resolvePaths(m *config.Model, dir string) *config.Model {
	for _, p := range []*string{m.InPath, m.OutPath} {
		if p != nil && *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return m
}
