// Package hcl provides the concrete HCL implementation of the job file
// Loader defined in the `config` package. It is responsible for parsing the
// file, evaluating its expressions against the process environment, and
// binding the results to the format-agnostic model.
package hcl
