package app

import (
	"github.com/specialistvlad/encryptdecrypt/internal/registry"
	"github.com/specialistvlad/encryptdecrypt/modules/codepoint"
	"github.com/specialistvlad/encryptdecrypt/modules/shift"
)

// coreModules is the definitive list of all cipher modules that are compiled
// into the binary.
var coreModules = []registry.Module{
	&shift.Module{},
	&codepoint.Module{},
}

// Algorithms returns the names of the compiled-in ciphers, sorted.
func Algorithms() []string {
	reg := registry.New()
	for _, mod := range coreModules {
		mod.Register(reg)
	}
	return reg.Names()
}
