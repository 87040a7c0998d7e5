package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/encryptdecrypt/internal/cipher"
)

// ErrUnknownAlgorithm is returned when no cipher is registered under the
// requested name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm type")

// Module is the interface that all cipher modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds a cipher bound to the given key.
type Factory func(key int) cipher.Cipher

// RegisteredCipher holds the compiled Go parts of a cipher module.
type RegisteredCipher struct {
	Description string
	New         Factory
}

// Registry holds all the registered ciphers for a single application instance.
type Registry struct {
	CipherRegistry map[string]*RegisteredCipher
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		CipherRegistry: make(map[string]*RegisteredCipher),
	}
}

// Lookup returns the cipher registered under name.
func (r *Registry) Lookup(name string) (*RegisteredCipher, error) {
	c, ok := r.CipherRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownAlgorithm, name)
	}
	return c, nil
}

// Names returns the registered algorithm names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.CipherRegistry))
	for name := range r.CipherRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
