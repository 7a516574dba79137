package schema

import "fmt"

// Registry indexes definitions from any number of files by name. Enum,
// bitfield and record names share one namespace since each becomes a type
// name in generated code.
type Registry struct {
	enums     map[string]*Enum
	bitfields map[string]*Bitfield
	records   map[string]*Record
	owner     map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		enums:     make(map[string]*Enum),
		bitfields: make(map[string]*Bitfield),
		records:   make(map[string]*Record),
		owner:     make(map[string]string),
	}
}

// Register adds every definition of f. A name defined twice is an error.
func (r *Registry) Register(f *File) error {
	for _, e := range f.Enums {
		if err := r.claim(e.Name, f.Name); err != nil {
			return err
		}
		r.enums[e.Name] = e
	}
	for _, b := range f.Bitfields {
		if err := r.claim(b.Name, f.Name); err != nil {
			return err
		}
		r.bitfields[b.Name] = b
	}
	for _, rec := range f.Records {
		if err := r.claim(rec.Name, f.Name); err != nil {
			return err
		}
		r.records[rec.Name] = rec
	}
	return nil
}

func (r *Registry) claim(name, file string) error {
	if prev, exists := r.owner[name]; exists {
		return &Error{
			File:   file,
			Entity: name,
			Err:    fmt.Errorf("%w: already defined in %s", ErrDuplicate, prev),
		}
	}
	r.owner[name] = file
	return nil
}

// Enum looks up an enum by name.
func (r *Registry) Enum(name string) *Enum {
	return r.enums[name]
}

// Bitfield looks up a bitfield by name.
func (r *Registry) Bitfield(name string) *Bitfield {
	return r.bitfields[name]
}

// Record looks up a record by name.
func (r *Registry) Record(name string) *Record {
	return r.records[name]
}
