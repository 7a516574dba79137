package codegen

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tagdef/hek"
	"github.com/signadot/tagdef/schema"
)

const layoutDefs = `[
	{"type": "enum", "name": "Mode", "options": ["off", "on"]},
	{"type": "bitfield", "name": "Flags", "width": 8, "fields": ["a", "b"]},
	{"type": "struct", "name": "Base", "fields": [
		{"name": "mode", "type": "Mode"},
		{"type": "pad", "size": 2}
	], "size": 4},
	{"type": "struct", "name": "Item", "fields": [
		{"name": "flags", "type": "Flags"}
	]},
	{"type": "struct", "name": "Thing", "inherits": "Base", "fields": [
		{"name": "position", "type": "Point3D"},
		{"name": "range", "type": "float", "bounds": true},
		{"name": "weights", "type": "int16", "count": 3},
		{"name": "model", "type": "TagDependency", "classes": ["biped"]},
		{"name": "items", "type": "TagReflexive", "struct": "Item"},
		{"name": "data", "type": "TagDataOffset"}
	]}
]`

type slotSummary struct {
	Name   string
	Offset int
	Size   int
}

func summarize(l *Layout) []slotSummary {
	var res []slotSummary
	for _, s := range l.Slots {
		res = append(res, slotSummary{Name: s.GoName, Offset: s.Offset, Size: s.Kind.Size()})
	}
	return res
}

func TestLayout(t *testing.T) {
	c := resolvedContext(t, layoutDefs)
	l := c.Layout("Thing")
	if l == nil {
		t.Fatal("no layout for Thing")
	}
	want := []slotSummary{
		{"Mode", 0, 2},
		{"", 2, 2},
		{"Position", 4, 12},
		{"Range", 16, 8},
		{"Weights", 24, 6},
		{"Model", 30, hek.DependencySize},
		{"Items", 46, hek.ReflexiveSize},
		{"Data", 58, hek.DataSize},
	}
	if diff := cmp.Diff(want, summarize(l)); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if l.Size != 78 {
		t.Errorf("Size = %d, want 78", l.Size)
	}
	if l.Parent != c.Layout("Base") {
		t.Error("parent layout not linked")
	}
	if got := len(l.Own()); got != 6 {
		t.Errorf("len(Own()) = %d, want 6", got)
	}
	if got := len(l.Reflexives()); got != 1 {
		t.Errorf("len(Reflexives()) = %d, want 1", got)
	}
	if got := c.Layout("Item").Size; got != 1 {
		t.Errorf("Item size = %d, want 1", got)
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		defs string
		want error
	}{
		{
			name: "declared size mismatch",
			defs: `[{"type": "struct", "name": "A", "size": 8, "fields": [{"name": "x", "type": "float"}]}]`,
			want: ErrLayout,
		},
		{
			name: "unknown type",
			defs: `[{"type": "struct", "name": "A", "fields": [{"name": "x", "type": "double"}]}]`,
			want: ErrUnknownType,
		},
		{
			name: "unknown class",
			defs: `[{"type": "struct", "name": "A", "fields": [{"name": "x", "type": "TagDependency", "classes": ["dragon"]}]}]`,
			want: ErrUnknownClass,
		},
		{
			name: "duplicate go name",
			defs: `[{"type": "struct", "name": "A", "fields": [
				{"name": "max speed", "type": "float"},
				{"name": "max_speed", "type": "float"}
			]}]`,
			want: ErrLayout,
		},
		{
			name: "field shadows parent",
			defs: `[
				{"type": "struct", "name": "P", "fields": [{"name": "x", "type": "float"}]},
				{"type": "struct", "name": "C", "inherits": "P", "fields": [{"name": "x", "type": "float"}]}
			]`,
			want: ErrLayout,
		},
		{
			name: "bounds with count",
			defs: `[{"type": "struct", "name": "A", "fields": [{"name": "x", "type": "float", "bounds": true, "count": 2}]}]`,
			want: ErrLayout,
		},
		{
			name: "count on reflexive",
			defs: `[
				{"type": "struct", "name": "B", "fields": []},
				{"type": "struct", "name": "A", "fields": [{"name": "x", "type": "TagReflexive", "struct": "B", "count": 2}]}
			]`,
			want: ErrLayout,
		},
		{
			name: "colliding type names",
			defs: `[
				{"type": "struct", "name": "foo_bar", "fields": []},
				{"type": "struct", "name": "FooBar", "fields": []}
			]`,
			want: ErrLayout,
		},
		{
			name: "colliding enum constants",
			defs: `[{"type": "enum", "name": "E", "options": ["a b", "a_b"]}]`,
			want: ErrLayout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(t, tt.defs)
			err := c.Resolve()
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayoutUndefinedParent(t *testing.T) {
	tests := []struct {
		name    string
		parent  string
		warning bool
	}{
		{name: "missing parent", parent: "Missing", warning: true},
		{name: "tolerated parent", parent: "PredictedResource"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			c := resolvedContext(t, `[
				{"type": "struct", "name": "Child", "inherits": "`+tt.parent+`", "fields": [
					{"name": "x", "type": "float"}
				]}
			]`, WithLogger(logger))
			l := c.Layout("Child")
			if l == nil {
				t.Fatal("no layout for Child")
			}
			if l.Parent != nil {
				t.Errorf("Parent = %v, want nil", l.Parent.Record.Name)
			}
			want := []slotSummary{{"X", 0, 4}}
			if diff := cmp.Diff(want, summarize(l)); diff != "" {
				t.Errorf("layout mismatch (-want +got):\n%s", diff)
			}
			if got := strings.Contains(buf.String(), "name="+tt.parent); got != tt.warning {
				t.Errorf("warning logged = %v, want %v, log:\n%s", got, tt.warning, buf.String())
			}
			files := generate(t, c)
			if strings.Contains(string(files[Definitions]), tt.parent) {
				t.Errorf("definitions reference the undefined parent:\n%s", files[Definitions])
			}
		})
	}
}

func TestLayoutErrorLocation(t *testing.T) {
	c := newContext(t, `[{"type": "struct", "name": "A", "fields": [{"name": "x", "type": "double"}]}]`)
	err := c.Resolve()
	var serr *schema.Error
	if !errors.As(err, &serr) {
		t.Fatalf("Resolve() error %v is not a *schema.Error", err)
	}
	if serr.Entity != "A" || serr.Field != "x" {
		t.Errorf("error located at %s::%s, want A::x", serr.Entity, serr.Field)
	}
}

func TestClassify(t *testing.T) {
	c := resolvedContext(t, layoutDefs)
	tests := []struct {
		field *schema.Field
		want  Kind
	}{
		{&schema.Field{Type: "pad", Size: 3}, &Pad{N: 3}},
		{&schema.Field{Type: "TagDataOffset"}, &Blob{}},
		{
			&schema.Field{Type: "TagDependency", Classes: []string{"biped", "fog"}},
			&Dependency{Classes: []string{"biped", "fog"}, FourCCs: []hek.FourCC{hek.MakeFourCC("bipd"), hek.MakeFourCC("fog ")}},
		},
		{
			&schema.Field{Type: "TagReflexive", Struct: "Nowhere"},
			&Reflexive{Name: "Nowhere"},
		},
		{&schema.Field{Type: "Angle"}, &Scalar{Type: mustPrimitive(t, "Angle")}},
		{&schema.Field{Type: "Index", Count: 4}, &Scalar{Type: mustPrimitive(t, "Index"), Count: 4}},
		{&schema.Field{Type: "Point2D", Bounds: true}, &Bounded{Type: mustPrimitive(t, "Point2D")}},
	}
	for _, tt := range tests {
		t.Run(tt.field.Type, func(t *testing.T) {
			got, err := c.classify(tt.field)
			if err != nil {
				t.Fatalf("classify() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyDefinedTypes(t *testing.T) {
	c := resolvedContext(t, layoutDefs)
	k, err := c.classify(&schema.Field{Type: "Mode"})
	if err != nil {
		t.Fatal(err)
	}
	if s := k.(*Scalar); s.Type.GoType != "Mode" || s.Size() != 2 || s.Type.Enum == nil {
		t.Errorf("enum scalar = %+v", s.Type)
	}
	k, err = c.classify(&schema.Field{Type: "Flags"})
	if err != nil {
		t.Fatal(err)
	}
	if s := k.(*Scalar); s.Type.Base != BaseUint8 || s.Size() != 1 || s.Type.Bitfield == nil {
		t.Errorf("bitfield scalar = %+v", s.Type)
	}
}

func mustPrimitive(t *testing.T, name string) ScalarType {
	t.Helper()
	p, ok := Primitive(name)
	if !ok {
		t.Fatalf("no primitive %s", name)
	}
	return p
}

func TestPrimitiveSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"int8", 1}, {"uint16", 2}, {"float", 4}, {"TagID", 4},
		{"Point2D", hek.SizeOf[hek.Point2D]()},
		{"Point3D", hek.SizeOf[hek.Point3D]()},
		{"Quaternion", hek.SizeOf[hek.Quaternion]()},
		{"Plane2D", hek.SizeOf[hek.Plane2D]()},
		{"Plane3D", hek.SizeOf[hek.Plane3D]()},
		{"ColorARGB", hek.SizeOf[hek.ColorARGB]()},
		{"Matrix", hek.SizeOf[hek.Matrix]()},
		{"Point2DInt", hek.SizeOf[hek.Point2DInt]()},
		{"Rectangle2D", hek.SizeOf[hek.Rectangle2D]()},
		{"TagString", hek.SizeOf[hek.TagString]()},
	}
	for _, tt := range tests {
		p := mustPrimitive(t, tt.name)
		if got := p.Size(); got != tt.size {
			t.Errorf("%s size = %d, want %d", tt.name, got, tt.size)
		}
	}
}
