// Package config defines the format-agnostic model of a job file, the
// optional file that supplies cipher settings, along with the Loader
// interface for reading it. Concrete implementations, such as for HCL, are
// provided in separate packages.
package config
