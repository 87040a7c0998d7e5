package config

import "context"

// Loader is the interface for a format-specific job file loader.
type Loader interface {
	// Load reads the job file at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
