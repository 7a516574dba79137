package tagvalue

import (
	"fmt"
	"math"
	"slices"

	"github.com/signadot/tagdef/codegen"
	"github.com/signadot/tagdef/hek"
	"github.com/signadot/tagdef/schema"
)

// Record maps field names to values.
type Record map[string]any

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: %v (%T) is not a number", ErrValue, v, v)
}

func toInt(v any, base codegen.Base) (int64, error) {
	var n int64
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int:
		n = int64(v)
	case int64:
		n = v
	case int32:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d out of range", ErrValue, v)
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrValue, v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("%w: %v (%T) is not an integer", ErrValue, v, v)
	}
	lo, hi := base.Range()
	if float64(n) < lo || float64(n) > hi {
		return 0, fmt.Errorf("%w: %d out of range", ErrValue, n)
	}
	return n, nil
}

// putComponent encodes one component at the start of b.
func putComponent(b []byte, base codegen.Base, v any) error {
	if base.IsFloat() {
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		hek.Put(b, float32(f))
		return nil
	}
	n, err := toInt(v, base)
	if err != nil {
		return err
	}
	switch base {
	case codegen.BaseInt8:
		hek.Put(b, int8(n))
	case codegen.BaseUint8, codegen.BaseByte:
		hek.Put(b, uint8(n))
	case codegen.BaseInt16:
		hek.Put(b, int16(n))
	case codegen.BaseUint16:
		hek.Put(b, uint16(n))
	case codegen.BaseInt32:
		hek.Put(b, int32(n))
	default:
		hek.Put(b, uint32(n))
	}
	return nil
}

func getComponent(b []byte, base codegen.Base) any {
	switch base {
	case codegen.BaseFloat32:
		return float64(hek.Get[float32](b))
	case codegen.BaseInt8:
		return int64(hek.Get[int8](b))
	case codegen.BaseUint8, codegen.BaseByte:
		return int64(hek.Get[uint8](b))
	case codegen.BaseInt16:
		return int64(hek.Get[int16](b))
	case codegen.BaseUint16:
		return int64(hek.Get[uint16](b))
	case codegen.BaseInt32:
		return int64(hek.Get[int32](b))
	}
	return int64(hek.Get[uint32](b))
}

// putScalar encodes a single value of t.
func putScalar(b []byte, t *codegen.ScalarType, v any, quantize bool) error {
	switch {
	case t.Name == "TagString":
		var s string
		if v != nil {
			var ok bool
			if s, ok = v.(string); !ok {
				return fmt.Errorf("%w: %v (%T) is not a string", ErrValue, v, v)
			}
		}
		hek.Put(b, hek.MakeTagString(s))
		return nil
	case t.Enum != nil:
		if name, ok := v.(string); ok {
			i := slices.Index(t.Enum.Options, name)
			if i < 0 {
				return fmt.Errorf("%w: %q is not a %s", hek.ErrInvalidEnum, name, t.Enum.Name)
			}
			v = int64(i)
		}
	case t.Bitfield != nil:
		if names, ok := flagNames(v); ok {
			var bits int64
			for _, name := range names {
				i := slices.Index(t.Bitfield.Fields, name)
				if i < 0 {
					return fmt.Errorf("%w: %q is not a %s flag", hek.ErrInvalidFlag, name, t.Bitfield.Name)
				}
				bits |= 1 << i
			}
			v = bits
		}
	case t.Composite():
		vs, ok := v.([]any)
		if v == nil {
			vs, ok = make([]any, t.Components), true
		}
		if !ok || len(vs) != t.Components {
			return fmt.Errorf("%w: %s needs %d components", ErrValue, t.Name, t.Components)
		}
		size := t.Base.Size()
		for i, c := range vs {
			if err := putComponent(b[i*size:], t.Base, c); err != nil {
				return err
			}
		}
		return nil
	}
	if quantize {
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		hek.Put(b, hek.Quantize(float32(f)))
		return nil
	}
	return putComponent(b, t.Base, v)
}

func flagNames(v any) ([]string, bool) {
	switch v := v.(type) {
	case []string:
		return v, true
	case []any:
		names := make([]string, len(v))
		for i, x := range v {
			s, ok := x.(string)
			if !ok {
				return nil, false
			}
			names[i] = s
		}
		return names, true
	}
	return nil, false
}

func getScalar(b []byte, t *codegen.ScalarType) any {
	switch {
	case t.Name == "TagString":
		return hek.Get[hek.TagString](b).String()
	case t.Composite():
		size := t.Base.Size()
		vs := make([]any, t.Components)
		for i := range vs {
			vs[i] = getComponent(b[i*size:], t.Base)
		}
		return vs
	}
	v := getComponent(b, t.Base)
	switch {
	case t.Enum != nil:
		if n := v.(int64); n < int64(len(t.Enum.Options)) {
			return t.Enum.Options[n]
		}
	case t.Bitfield != nil:
		n := v.(int64)
		if n>>len(t.Bitfield.Fields) != 0 {
			return n
		}
		names := []string{}
		for i, name := range t.Bitfield.Fields {
			if n&(1<<i) != 0 {
				names = append(names, name)
			}
		}
		return names
	}
	return v
}

func toRecord(v any) (Record, error) {
	switch v := v.(type) {
	case nil:
		return Record{}, nil
	case Record:
		return v, nil
	case map[string]any:
		return Record(v), nil
	}
	return nil, fmt.Errorf("%w: %T is not a record", ErrValue, v)
}

func toRecords(v any) ([]Record, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []Record:
		return v, nil
	case []any:
		res := make([]Record, len(v))
		for i, x := range v {
			r, err := toRecord(x)
			if err != nil {
				return nil, err
			}
			res[i] = r
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T is not a list of records", ErrValue, v)
}

func toDependency(v any) (hek.Dependency, error) {
	r, err := toRecord(v)
	if err != nil {
		return hek.Dependency{}, err
	}
	var d hek.Dependency
	switch class := r["class"].(type) {
	case nil:
	case string:
		c, err := ClassFourCC(class)
		if err != nil {
			return d, err
		}
		d.Class = c
	default:
		n, err := toInt(class, codegen.BaseUint32)
		if err != nil {
			return d, err
		}
		d.Class = hek.FourCC(n)
	}
	if p, ok := r["path"]; ok && p != nil {
		s, ok := p.(string)
		if !ok {
			return d, fmt.Errorf("%w: path %v (%T) is not a string", ErrValue, p, p)
		}
		d.Path = s
	}
	return d, nil
}

// ClassFourCC accepts a tag class name, a four character code or "none".
func ClassFourCC(class string) (hek.FourCC, error) {
	if class == "none" {
		return hek.NoneFourCC, nil
	}
	if cc, ok := schema.ClassFourCC(class); ok {
		return hek.MakeFourCC(cc), nil
	}
	if len(class) == 4 {
		return hek.MakeFourCC(class), nil
	}
	return 0, fmt.Errorf("%w: unknown tag class %q", ErrValue, class)
}

// ClassName names a tag class, falling back to its four character code.
func ClassName(c hek.FourCC) string {
	if name, ok := schema.ClassName(c.String()); ok {
		return name
	}
	return c.String()
}
