package codegen

import (
	"fmt"

	"github.com/signadot/tagdef/schema"
)

// goType is the Go type of a field in generated code.
func goType(k Kind) string {
	switch k := k.(type) {
	case *Scalar:
		if k.IsArray() {
			return fmt.Sprintf("[%d]%s", k.Count, k.Type.GoType)
		}
		return k.Type.GoType
	case *Bounded:
		return "hek.Bounds[" + k.Type.GoType + "]"
	case *Dependency:
		return "hek.Dependency"
	case *Reflexive:
		return "[]" + goName(k.Name)
	case *Blob:
		return "[]byte"
	}
	return ""
}

func bitfieldBase(b *schema.Bitfield) string {
	switch b.Width {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	}
	return "uint32"
}

func (c *Context) emitDefinitions(f *goFile) {
	for _, e := range c.Enums {
		t := goName(e.Name)
		if e.Comment != "" {
			f.comment(e.Comment)
		}
		f.p("type %s uint16", t)
		f.nl()
		if len(e.Options) == 0 {
			continue
		}
		f.p("const (")
		for i, o := range e.Options {
			if i == 0 {
				f.p("%s %s = iota", enumConst(e.Name, o), t)
				continue
			}
			f.p("%s", enumConst(e.Name, o))
		}
		f.p(")")
		f.nl()
	}
	for _, b := range c.Bitfields {
		t := goName(b.Name)
		if b.Comment != "" {
			f.comment(b.Comment)
		}
		f.p("type %s %s", t, bitfieldBase(b))
		f.nl()
		if len(b.Fields) == 0 {
			continue
		}
		f.p("const (")
		for i, name := range b.Fields {
			if i == 0 {
				f.p("%s %s = 1 << iota", enumConst(b.Name, name), t)
				continue
			}
			f.p("%s", enumConst(b.Name, name))
		}
		f.p(")")
		f.nl()
	}
	for _, r := range c.Order {
		c.emitRecordType(f, c.layouts[r.Name])
	}
}

func (c *Context) emitRecordType(f *goFile, l *Layout) {
	r := l.Record
	if r.Comment != "" {
		f.comment(r.Comment)
	}
	f.p("type %s struct {", goName(r.Name))
	if l.Parent != nil {
		f.p("%s", goName(l.Parent.Record.Name))
		f.nl()
	}
	for _, s := range l.Own() {
		if s.GoName == "" {
			continue
		}
		var notes []string
		if s.Field.Comment != "" {
			notes = append(notes, s.Field.Comment)
		}
		if s.Field.Unit != "" {
			notes = append(notes, "unit: "+s.Field.Unit)
		}
		if s.Field.CacheOnly {
			notes = append(notes, "cache only")
		}
		for _, n := range notes {
			f.comment(n)
		}
		f.p("%s %s", s.GoName, goType(s.Kind))
	}
	f.nl()
	f.p("cacheFormatted bool")
	f.p("}")
	f.nl()
}
