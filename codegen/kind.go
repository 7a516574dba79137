package codegen

import (
	"fmt"
	"math"

	"github.com/signadot/tagdef/hek"
	"github.com/signadot/tagdef/schema"
)

// Base is the encoding of one component of a scalar.
type Base int

const (
	BaseInt8 Base = iota
	BaseUint8
	BaseInt16
	BaseUint16
	BaseInt32
	BaseUint32
	BaseFloat32
	BaseByte
)

// Size is the encoded size of one component.
func (b Base) Size() int {
	switch b {
	case BaseInt8, BaseUint8, BaseByte:
		return 1
	case BaseInt16, BaseUint16:
		return 2
	default:
		return 4
	}
}

// Range is the range of values of an integer base.
func (b Base) Range() (lo, hi float64) {
	switch b {
	case BaseInt8:
		return math.MinInt8, math.MaxInt8
	case BaseUint8, BaseByte:
		return 0, math.MaxUint8
	case BaseInt16:
		return math.MinInt16, math.MaxInt16
	case BaseUint16:
		return 0, math.MaxUint16
	case BaseInt32:
		return math.MinInt32, math.MaxInt32
	case BaseUint32:
		return 0, math.MaxUint32
	}
	return -math.MaxFloat32, math.MaxFloat32
}

func (b Base) IsFloat() bool {
	return b == BaseFloat32
}

// ScalarType is a value type stored inline in a record.
type ScalarType struct {
	// Name is the type name used in definitions.
	Name string
	// GoType is the type expression in generated code.
	GoType     string
	Base       Base
	Components int
	// Flat is set for runtime structs whose fields are all components, so
	// an unkeyed literal can express any value.
	Flat bool

	Enum     *schema.Enum
	Bitfield *schema.Bitfield
}

func (t *ScalarType) Size() int {
	return t.Base.Size() * t.Components
}

// Composite reports whether the Go type is a struct or an array.
func (t *ScalarType) Composite() bool {
	return t.Components > 1
}

// Quantized reports whether the extract hidden transform rounds values of
// the type. Only plain floats are affected, not angles or fractions.
func (t *ScalarType) Quantized() bool {
	return t.Name == "float"
}

func prim(goType string, base Base) ScalarType {
	return ScalarType{GoType: goType, Base: base, Components: 1}
}

func compound(goType string, base Base, n int, flat bool) ScalarType {
	return ScalarType{GoType: goType, Base: base, Components: n, Flat: flat}
}

var primitives = map[string]ScalarType{
	"int8":         prim("int8", BaseInt8),
	"uint8":        prim("uint8", BaseUint8),
	"int16":        prim("int16", BaseInt16),
	"uint16":       prim("uint16", BaseUint16),
	"int32":        prim("int32", BaseInt32),
	"uint32":       prim("uint32", BaseUint32),
	"float":        prim("float32", BaseFloat32),
	"Angle":        prim("float32", BaseFloat32),
	"Fraction":     prim("float32", BaseFloat32),
	"Index":        prim("uint16", BaseUint16),
	"ColorARGBInt": prim("uint32", BaseUint32),
	"TagID":        prim("hek.TagID", BaseUint32),
	"TagFourCC":    prim("hek.FourCC", BaseUint32),
	"Pointer":      prim("hek.Pointer", BaseUint32),
	"Point2D":      compound("hek.Point2D", BaseFloat32, 2, true),
	"Point3D":      compound("hek.Point3D", BaseFloat32, 3, true),
	"Vector2D":     compound("hek.Vector2D", BaseFloat32, 2, true),
	"Vector3D":     compound("hek.Vector3D", BaseFloat32, 3, true),
	"Euler2D":      compound("hek.Euler2D", BaseFloat32, 2, true),
	"Euler3D":      compound("hek.Euler3D", BaseFloat32, 3, true),
	"Quaternion":   compound("hek.Quaternion", BaseFloat32, 4, true),
	"ColorRGB":     compound("hek.ColorRGB", BaseFloat32, 3, true),
	"ColorARGB":    compound("hek.ColorARGB", BaseFloat32, 4, true),
	"Plane2D":      compound("hek.Plane2D", BaseFloat32, 3, false),
	"Plane3D":      compound("hek.Plane3D", BaseFloat32, 4, false),
	"Matrix":       compound("hek.Matrix", BaseFloat32, 9, false),
	"Point2DInt":   compound("hek.Point2DInt", BaseInt16, 2, true),
	"Rectangle2D":  compound("hek.Rectangle2D", BaseInt16, 4, true),
	"TagString":    compound("hek.TagString", BaseByte, 32, false),
}

// Primitive looks up a built in scalar type by definition name.
func Primitive(name string) (ScalarType, bool) {
	t, ok := primitives[name]
	if ok {
		t.Name = name
	}
	return t, ok
}

// Kind is the layout class of a field. It is one of *Scalar, *Pad,
// *Bounded, *Dependency, *Reflexive or *Blob.
type Kind interface {
	// Size is the number of bytes the field occupies in the fixed part.
	Size() int
	isKind()
}

// Scalar is a value, or a fixed array of Count values when Count > 1.
type Scalar struct {
	Type  ScalarType
	Count int
}

func (k *Scalar) Size() int {
	return k.Type.Size() * max(k.Count, 1)
}

// IsArray reports whether the field is a fixed size array.
func (k *Scalar) IsArray() bool {
	return k.Count > 1
}

type Pad struct {
	N int
}

func (k *Pad) Size() int { return k.N }

// Bounded is a from/to pair of values.
type Bounded struct {
	Type ScalarType
}

func (k *Bounded) Size() int { return 2 * k.Type.Size() }

// Dependency references another tag by class and path.
type Dependency struct {
	Classes []string
	FourCCs []hek.FourCC
}

func (k *Dependency) Size() int { return hek.DependencySize }

// Reflexive is a variable length array of records.
type Reflexive struct {
	// Name is the element record, Record is nil if it is not defined by
	// any definition file.
	Name   string
	Record *schema.Record
}

func (k *Reflexive) Size() int { return hek.ReflexiveSize }

// Blob is a variable length byte array.
type Blob struct{}

func (k *Blob) Size() int { return hek.DataSize }

func (*Scalar) isKind()     {}
func (*Pad) isKind()        {}
func (*Bounded) isKind()    {}
func (*Dependency) isKind() {}
func (*Reflexive) isKind()  {}
func (*Blob) isKind()       {}

func (c *Context) classify(f *schema.Field) (Kind, error) {
	switch f.Type {
	case schema.TypePad:
		return &Pad{N: f.Size}, nil
	case schema.TypeDependency:
		k := &Dependency{Classes: f.Classes}
		for _, class := range f.Classes {
			cc, ok := schema.ClassFourCC(class)
			if !ok {
				return nil, fmt.Errorf("%w %q", ErrUnknownClass, class)
			}
			k.FourCCs = append(k.FourCCs, hek.MakeFourCC(cc))
		}
		return k, nil
	case schema.TypeReflexive:
		return &Reflexive{Name: f.Struct, Record: c.reg.Record(f.Struct)}, nil
	case schema.TypeDataOffset:
		return &Blob{}, nil
	}
	t, err := c.scalarType(f.Type)
	if err != nil {
		return nil, err
	}
	if f.Bounds {
		if f.Count > 1 {
			return nil, fmt.Errorf("%w: bounds with count", ErrLayout)
		}
		return &Bounded{Type: t}, nil
	}
	return &Scalar{Type: t, Count: f.Count}, nil
}

func (c *Context) scalarType(name string) (ScalarType, error) {
	if t, ok := Primitive(name); ok {
		return t, nil
	}
	if e := c.reg.Enum(name); e != nil {
		return ScalarType{
			Name:       name,
			GoType:     goName(name),
			Base:       BaseUint16,
			Components: 1,
			Enum:       e,
		}, nil
	}
	if b := c.reg.Bitfield(name); b != nil {
		base := BaseUint32
		switch b.Width {
		case 8:
			base = BaseUint8
		case 16:
			base = BaseUint16
		}
		return ScalarType{
			Name:       name,
			GoType:     goName(name),
			Base:       base,
			Components: 1,
			Bitfield:   b,
		}, nil
	}
	return ScalarType{}, fmt.Errorf("%w %q", ErrUnknownType, name)
}
