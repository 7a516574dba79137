package schema

// Entity types accepted in a definition file.
const (
	EntityEnum     = "enum"
	EntityBitfield = "bitfield"
	EntityStruct   = "struct"
)

// Field types with a layout of their own. Any other field type names a
// scalar: a primitive, an enum or a bitfield.
const (
	TypePad        = "pad"
	TypeDependency = "TagDependency"
	TypeReflexive  = "TagReflexive"
	TypeDataOffset = "TagDataOffset"
)

// File is the content of one definition file.
type File struct {
	// Name is the base name of the file without extension.
	Name string

	Enums     []*Enum
	Bitfields []*Bitfield
	Records   []*Record
}

// Enum is a 16-bit enumeration. The position of an option is its value.
type Enum struct {
	Name    string
	Options []string
	Comment string
	File    string
}

// Bitfield is a set of flags. The position of a flag is its bit.
type Bitfield struct {
	Name    string
	Fields  []string
	Width   int
	Comment string
	File    string
}

// Record is a struct definition.
type Record struct {
	Name string

	// Inherits names the parent record whose fields precede ours.
	Inherits string

	Fields []*Field

	// Size is the declared size of the compact form, 0 if not declared.
	Size int

	Comment string
	File    string
}

// Field is one field of a record.
type Field struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`

	// Size is the size of a pad field.
	Size int `json:"size,omitempty"`

	// Count makes a scalar a fixed size array when greater than 1.
	Count int `json:"count,omitempty"`

	// Bounds makes a scalar a from/to pair.
	Bounds bool `json:"bounds,omitempty"`

	// Struct names the element record of a reflexive.
	Struct string `json:"struct,omitempty"`

	// Classes are the tag classes a dependency may reference.
	Classes []string `json:"classes,omitempty"`

	// Default is applied to a zero value when cache formatting.
	Default any `json:"default,omitempty"`

	CacheOnly           bool `json:"cache_only,omitempty"`
	DropOnExtractHidden bool `json:"drop_on_extract_hidden,omitempty"`
	Hidden              bool `json:"hidden,omitempty"`
	ReadOnly            bool `json:"read_only,omitempty"`

	Unit    string `json:"unit,omitempty"`
	Comment string `json:"comment,omitempty"`

	// set when the decoded field has a "default" key, even a null one
	declaredDefault bool
}

// HasDefault reports whether the field declares a default value.
func (f *Field) HasDefault() bool {
	return f.Default != nil || f.declaredDefault
}

// IsPad reports whether the field is unnamed filler.
func (f *Field) IsPad() bool {
	return f.Type == TypePad
}
