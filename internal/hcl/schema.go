package hcl

// jobFile is the HCL schema of a job file. Every attribute is optional;
// gohcl leaves absent ones nil and rejects attributes not listed here.
type jobFile struct {
	Mode      *string `hcl:"mode,optional"`
	Algorithm *string `hcl:"alg,optional"`
	Data      *string `hcl:"data,optional"`
	InPath    *string `hcl:"in,optional"`
	Key       *int    `hcl:"key,optional"`
	OutPath   *string `hcl:"out,optional"`
}
