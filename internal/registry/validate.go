package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/encryptdecrypt/internal/ctxlog"
)

// ValidateRegistry checks that every registered cipher can actually be built.
// A module that registers a nil factory, or a factory that returns nil, is a
// programmer error reported here rather than at run time.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	if len(r.CipherRegistry) == 0 {
		return fmt.Errorf("registry validation failed: no ciphers registered")
	}

	for _, name := range r.Names() {
		c := r.CipherRegistry[name]
		if name == "" {
			errs = append(errs, "cipher registered with an empty name")
			continue
		}
		if c == nil || c.New == nil {
			errs = append(errs, fmt.Sprintf("cipher '%s': no factory registered", name))
			continue
		}
		if c.New(0) == nil {
			errs = append(errs, fmt.Sprintf("cipher '%s': factory returned nil", name))
			continue
		}
		logger.Debug("Cipher validated.", "name", name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
