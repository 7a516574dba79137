package schema

import (
	"strings"
	"unicode"
)

// SafeName rewrites a free text name into an identifier token: spaces and
// hyphens become underscores and apostrophes are dropped. Unless
// keepLeadingDigit is set, a name starting with a digit gets an underscore
// prefix.
func SafeName(name string, keepLeadingDigit bool) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, "-", "_")
	if !keepLeadingDigit && name != "" && unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// Normalize validates the definitions of f and rewrites their option, flag
// and field names in place. Dependency class lists are expanded with
// [ExpandClasses].
func Normalize(f *File) error {
	for _, e := range f.Enums {
		if e.Name == "" {
			return &Error{File: f.Name, Err: invalidf("enum without a name")}
		}
		for i := range e.Options {
			// options are positional; a leading digit is kept
			e.Options[i] = SafeName(e.Options[i], true)
		}
	}
	for _, b := range f.Bitfields {
		if err := normalizeBitfield(b); err != nil {
			return &Error{File: f.Name, Entity: b.Name, Err: err}
		}
	}
	for _, r := range f.Records {
		if r.Name == "" {
			return &Error{File: f.Name, Err: invalidf("struct without a name")}
		}
		for _, fd := range r.Fields {
			if err := normalizeField(fd); err != nil {
				return &Error{File: f.Name, Entity: r.Name, Field: fd.Name, Err: err}
			}
		}
	}
	return nil
}

func normalizeBitfield(b *Bitfield) error {
	if b.Name == "" {
		return invalidf("bitfield without a name")
	}
	switch b.Width {
	case 0:
		b.Width = 32
	case 8, 16, 32:
	default:
		return invalidf("bitfield width %d is not one of 8, 16, 32", b.Width)
	}
	if len(b.Fields) > b.Width {
		return invalidf("%d flags do not fit in %d bits", len(b.Fields), b.Width)
	}
	for i := range b.Fields {
		b.Fields[i] = SafeName(b.Fields[i], false)
	}
	return nil
}

func normalizeField(fd *Field) error {
	if fd.CacheOnly && fd.HasDefault() {
		return ErrDefaultCacheOnly
	}
	if fd.Type == "" {
		return invalidf("field without a type")
	}
	if fd.Count < 0 {
		return invalidf("negative count %d", fd.Count)
	}
	if fd.IsPad() {
		if fd.Size <= 0 {
			return invalidf("pad without a size")
		}
		return nil
	}
	if fd.Name == "" {
		return invalidf("%s field without a name", fd.Type)
	}
	fd.Name = SafeName(fd.Name, false)
	switch fd.Type {
	case TypeReflexive:
		if fd.Struct == "" {
			return invalidf("reflexive without a struct")
		}
	case TypeDependency:
		if len(fd.Classes) == 0 {
			return invalidf("dependency without classes")
		}
		fd.Classes = ExpandClasses(fd.Classes)
	}
	return nil
}
