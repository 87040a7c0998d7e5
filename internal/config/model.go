package config

// Model is the unified, format-agnostic representation of a job file.
// A nil field means the file did not set that value.
type Model struct {
	Mode      *string
	Algorithm *string
	Data      *string
	InPath    *string
	Key       *int
	OutPath   *string
}

// Set returns the names of the settings present in the model, in the order
// they are declared on the command line.
func (m *Model) Set() []string {
	if m == nil {
		return nil
	}
	var names []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"mode", m.Mode != nil},
		{"alg", m.Algorithm != nil},
		{"data", m.Data != nil},
		{"in", m.InPath != nil},
		{"key", m.Key != nil},
		{"out", m.OutPath != nil},
	} {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}

// Overlay returns a new model holding m's settings with every setting that
// o defines applied on top.
func (m *Model) Overlay(o *Model) *Model {
	out := &Model{}
	if m != nil {
		*out = *m
	}
	if o == nil {
		return out
	}
	if o.Mode != nil {
		out.Mode = o.Mode
	}
	if o.Algorithm != nil {
		out.Algorithm = o.Algorithm
	}
	if o.Data != nil {
		out.Data = o.Data
	}
	if o.InPath != nil {
		out.InPath = o.InPath
	}
	if o.Key != nil {
		out.Key = o.Key
	}
	if o.OutPath != nil {
		out.OutPath = o.OutPath
	}
	return out
}
