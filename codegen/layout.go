package codegen

import (
	"fmt"

	"github.com/signadot/tagdef/schema"
)

// Slot is a field placed in the fixed part of a record.
type Slot struct {
	Field *schema.Field
	Kind  Kind
	// Offset from the start of the record.
	Offset int
	// Owner declares the field, either the record or one of its ancestors.
	Owner *schema.Record
	// GoName is the struct field in generated code, empty for pads.
	GoName string
	// Default is the rendered default of the field, nil if none.
	Default *defaultValue
}

// Layout is the compact form of a record: the fields of the parent
// followed by the record's own fields, without implicit padding.
type Layout struct {
	Record *schema.Record
	Parent *Layout
	Slots  []*Slot
	Size   int
}

// Own returns the slots declared by the record itself.
func (l *Layout) Own() []*Slot {
	if l.Parent == nil {
		return l.Slots
	}
	return l.Slots[len(l.Parent.Slots):]
}

type slotOffset struct {
	Field  string `json:"field"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

func (l *Layout) offsets() []slotOffset {
	res := make([]slotOffset, len(l.Slots))
	for i, s := range l.Slots {
		res[i] = slotOffset{Field: s.GoName, Offset: s.Offset, Size: s.Kind.Size()}
	}
	return res
}

// Reflexives returns the slots holding arrays of records.
func (l *Layout) Reflexives() []*Slot {
	var res []*Slot
	for _, s := range l.Slots {
		if _, ok := s.Kind.(*Reflexive); ok {
			res = append(res, s)
		}
	}
	return res
}

func (c *Context) computeLayout(r *schema.Record, done map[string]*Layout) (*Layout, error) {
	l := &Layout{Record: r}
	names := make(map[string]bool)
	// an undefined parent was already reported while ordering; the record
	// is laid out without it
	if p := done[r.Inherits]; p != nil {
		l.Parent = p
		l.Slots = append(l.Slots, p.Slots...)
		l.Size = p.Size
		for _, s := range p.Slots {
			names[s.GoName] = true
		}
		// the parent is embedded under its type name
		names[goName(p.Record.Name)] = true
	}
	for _, f := range r.Fields {
		k, err := c.classify(f)
		if err == nil {
			err = checkKind(k, f)
		}
		var def *defaultValue
		if err == nil && f.HasDefault() {
			def, err = c.renderDefault(k, f.Default)
		}
		if err != nil {
			return nil, &schema.Error{File: r.File, Entity: r.Name, Field: f.Name, Err: err}
		}
		s := &Slot{Field: f, Kind: k, Offset: l.Size, Owner: r, Default: def}
		if !f.IsPad() {
			s.GoName = fieldName(f.Name)
			if names[s.GoName] {
				return nil, &schema.Error{
					File:   r.File,
					Entity: r.Name,
					Field:  f.Name,
					Err:    fmt.Errorf("%w: duplicate field %s", ErrLayout, s.GoName),
				}
			}
			names[s.GoName] = true
		}
		l.Slots = append(l.Slots, s)
		l.Size += k.Size()
	}
	if r.Size != 0 && r.Size != l.Size {
		return nil, &schema.Error{
			File:   r.File,
			Entity: r.Name,
			Err:    fmt.Errorf("%w: computed size %d, declared size %d", ErrLayout, l.Size, r.Size),
		}
	}
	return l, nil
}

// checkKind rejects attributes that have no meaning for a kind.
func checkKind(k Kind, f *schema.Field) error {
	switch k.(type) {
	case *Scalar, *Pad:
		return nil
	}
	if f.Count > 1 {
		return fmt.Errorf("%w: count on %s", ErrLayout, f.Type)
	}
	return nil
}
