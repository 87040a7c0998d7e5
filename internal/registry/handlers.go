package registry

import (
	"fmt"
	"log/slog"
)

// RegisterCipher registers a cipher module under the algorithm name used on
// the command line.
func (r *Registry) RegisterCipher(name string, c *RegisteredCipher) {
	if _, exists := r.CipherRegistry[name]; exists {
		panic(fmt.Sprintf("cipher with name '%s' already registered", name))
	}
	slog.Debug("Registering cipher.", "name", name)
	r.CipherRegistry[name] = c
}
