// Package registry provides the central "glue" for the cipher modules.
//
// The Registry stores the mapping between the algorithm names accepted on
// the command line (e.g., "shift") and the compiled Go factories that build
// the matching cipher. Modules register themselves during application
// startup; the registry is then validated once so that a broken module is
// caught before any input is read.
package registry
