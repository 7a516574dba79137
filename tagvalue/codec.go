package tagvalue

import (
	"errors"
	"fmt"

	"github.com/signadot/tagdef/codegen"
	"github.com/signadot/tagdef/hek"
)

var (
	ErrValue         = errors.New("invalid value")
	ErrUnknownRecord = errors.New("unknown record")
)

// Codec converts records of a resolved context.
type Codec struct {
	c *codegen.Context
}

func New(c *codegen.Context) *Codec {
	return &Codec{c: c}
}

func (d *Codec) layout(name string) (*codegen.Layout, error) {
	l := d.c.Layout(name)
	if l == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownRecord, name)
	}
	return l, nil
}

// Encode converts v, a record of type name, into HEK tag data the same
// way generated GenerateHEKTagData methods do. If header is not nil the
// data is a complete tag file of that class.
func (d *Codec) Encode(name string, v Record, header *hek.FourCC) ([]byte, error) {
	l, err := d.layout(name)
	if err != nil {
		return nil, err
	}
	data, err := d.encode(l, v)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return data, nil
	}
	data = append(hek.NewTagFileHeader(*header).Bytes(), data...)
	hek.SetChecksum(data)
	return data, nil
}

func (d *Codec) saved(s *codegen.Slot) bool {
	switch {
	case s.GoName == "":
		return false
	case s.Field.CacheOnly && !d.c.ExtractHidden():
		return false
	case s.Field.DropOnExtractHidden:
		return false
	}
	return true
}

func (d *Codec) encode(l *codegen.Layout, v Record) ([]byte, error) {
	data := make([]byte, l.Size)
	for _, s := range l.Slots {
		if !d.saved(s) {
			continue
		}
		x := v[s.Field.Name]
		off := s.Offset
		var err error
		switch k := s.Kind.(type) {
		case *codegen.Scalar:
			err = d.encodeScalar(data[off:], s, k, x)
		case *codegen.Bounded:
			var r Record
			if r, err = toRecord(x); err != nil {
				break
			}
			if err = putScalar(data[off:], &k.Type, r["from"], false); err != nil {
				break
			}
			err = putScalar(data[off+k.Type.Size():], &k.Type, r["to"], false)
		case *codegen.Dependency:
			var dep hek.Dependency
			if dep, err = toDependency(x); err != nil {
				break
			}
			hek.Put(data[off:], dep.Class)
			hek.Put(data[off+hek.DependencyTagIDOffset:], hek.NullTagID)
			if n := len(dep.Path); n > 0 {
				hek.Put(data[off+hek.DependencyPathSizeOffset:], uint32(n))
				data = append(data, dep.Path...)
				data = append(data, 0)
			}
		case *codegen.Reflexive:
			data, err = d.encodeReflexive(data, off, k, x)
		case *codegen.Blob:
			b, ok := x.([]byte)
			if x != nil && !ok {
				err = fmt.Errorf("%w: %T is not data", ErrValue, x)
				break
			}
			hek.Put(data[off:], uint32(len(b)))
			data = append(data, b...)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", l.Record.Name, s.Field.Name, err)
		}
	}
	return data, nil
}

func (d *Codec) encodeScalar(b []byte, s *codegen.Slot, k *codegen.Scalar, x any) error {
	if !k.IsArray() {
		quantize := d.c.ExtractHidden() && k.Type.Quantized() && s.Field.Count == 0
		return putScalar(b, &k.Type, x, quantize)
	}
	vs, ok := x.([]any)
	if x == nil {
		vs, ok = make([]any, k.Count), true
	}
	if !ok || len(vs) != k.Count {
		return fmt.Errorf("%w: want %d elements", ErrValue, k.Count)
	}
	for i, e := range vs {
		if err := putScalar(b[i*k.Type.Size():], &k.Type, e, false); err != nil {
			return err
		}
	}
	return nil
}

func (d *Codec) encodeReflexive(data []byte, off int, k *codegen.Reflexive, x any) ([]byte, error) {
	elems, err := toRecords(x)
	if err != nil || len(elems) == 0 {
		return data, err
	}
	el, err := d.layout(k.Name)
	if err != nil {
		return data, err
	}
	n := len(elems)
	if err := hek.CheckReflexiveCount(k.Name, n); err != nil {
		return data, err
	}
	hek.Put(data[off:], uint32(n))
	first := len(data)
	data = append(data, make([]byte, el.Size*n)...)
	for i, e := range elems {
		converted, err := d.encode(el, e)
		if err != nil {
			return data, fmt.Errorf("[%d]: %w", i, err)
		}
		copy(data[first+el.Size*i:], converted[:el.Size])
		data = append(data, converted[el.Size:]...)
	}
	return data, nil
}

// DecodeData parses HEK tag data without a header and reports how many
// bytes were consumed.
func (d *Codec) DecodeData(name string, data []byte) (Record, int, error) {
	l, err := d.layout(name)
	if err != nil {
		return nil, 0, err
	}
	if len(data) < l.Size {
		return nil, 0, hek.ShortData(name, l.Size, len(data))
	}
	r, read, err := d.decode(l, data[:l.Size], data[l.Size:])
	if err != nil {
		return nil, 0, err
	}
	return r, l.Size + read, nil
}

// Decode parses a tag file holding a record of type name. The data after
// the header must be consumed exactly.
func (d *Codec) Decode(name string, file []byte) (Record, hek.TagFileHeader, error) {
	var r Record
	h, err := hek.ParseTagFile(file, func(body []byte) (int, error) {
		var read int
		var err error
		r, read, err = d.DecodeData(name, body)
		return read, err
	})
	if err != nil {
		return nil, h, err
	}
	return r, h, nil
}

func (d *Codec) decode(l *codegen.Layout, fixed, tail []byte) (Record, int, error) {
	r := make(Record, len(l.Slots))
	read := 0
	for _, s := range l.Slots {
		if s.GoName == "" {
			continue
		}
		name := s.Field.Name
		off := s.Offset
		where := l.Record.Name + "." + name
		switch k := s.Kind.(type) {
		case *codegen.Scalar:
			if !k.IsArray() {
				r[name] = getScalar(fixed[off:], &k.Type)
				continue
			}
			vs := make([]any, k.Count)
			for i := range vs {
				vs[i] = getScalar(fixed[off+i*k.Type.Size():], &k.Type)
			}
			r[name] = vs
		case *codegen.Bounded:
			r[name] = Record{
				"from": getScalar(fixed[off:], &k.Type),
				"to":   getScalar(fixed[off+k.Type.Size():], &k.Type),
			}
		case *codegen.Dependency:
			dep := Record{"class": ClassName(hek.Get[hek.FourCC](fixed[off:])), "path": ""}
			if n := int(hek.Get[uint32](fixed[off+hek.DependencyPathSizeOffset:])); n > 0 {
				path, err := hek.ReadPath(tail[read:], n)
				if err != nil {
					return nil, 0, fmt.Errorf("%s: %w", where, err)
				}
				dep["path"] = path
				read += n + 1
			}
			r[name] = dep
		case *codegen.Reflexive:
			elems := []Record{}
			if n := int(hek.Get[uint32](fixed[off:])); n > 0 {
				el, err := d.layout(k.Name)
				if err != nil {
					return nil, 0, fmt.Errorf("%s: %w", where, err)
				}
				if err := hek.CheckReflexiveCount(where, n); err != nil {
					return nil, 0, err
				}
				if need, have := el.Size*n, len(tail)-read; need > have {
					return nil, 0, hek.ShortData(where, need, have)
				}
				block := tail[read : read+el.Size*n]
				read += el.Size * n
				elems = make([]Record, n)
				for i := range elems {
					e, m, err := d.decode(el, block[el.Size*i:el.Size*(i+1)], tail[read:])
					if err != nil {
						return nil, 0, fmt.Errorf("%s[%d]: %w", where, i, err)
					}
					elems[i] = e
					read += m
				}
			}
			r[name] = elems
		case *codegen.Blob:
			b := []byte{}
			if n := int(hek.Get[uint32](fixed[off:])); n > 0 {
				if have := len(tail) - read; n > have {
					return nil, 0, hek.ShortData(where, n, have)
				}
				b = append(b, tail[read:read+n]...)
				read += n
			}
			r[name] = b
		}
	}
	return r, read, nil
}
