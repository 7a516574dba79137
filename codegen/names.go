package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// methods of generated records which field names must not shadow.
var reservedNames = map[string]bool{
	"GenerateHEKTagData": true,
	"CacheFormat":        true,
	"CacheDeformat":      true,
	"RefactorReferences": true,
	"PostprocessHEKData": true,
	"String":             true,
}

// goName converts a definition name such as "max_vitality" or
// "2d_sprite" into an exported Go identifier.
func goName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" {
		return "X"
	}
	if unicode.IsDigit(rune(s[0])) {
		s = "X" + s
	}
	return s
}

// fieldName is the Go struct field of a definition field.
func fieldName(name string) string {
	s := goName(name)
	if reservedNames[s] {
		s += "Field"
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// enumConst names the constant of an enum option or bitfield flag.
func enumConst(typeName, option string) string {
	return goName(typeName) + goName(option)
}

// checkTypeNames rejects definitions whose generated type or constant
// names collide.
func (c *Context) checkTypeNames() error {
	seen := make(map[string]string)
	claim := func(ident, def string) error {
		if prev, ok := seen[ident]; ok {
			return fmt.Errorf("%w: %s and %s both generate %s", ErrLayout, prev, def, ident)
		}
		seen[ident] = def
		return nil
	}
	for _, e := range c.Enums {
		if err := claim(goName(e.Name), e.Name); err != nil {
			return err
		}
		for _, o := range e.Options {
			if err := claim(enumConst(e.Name, o), e.Name+"::"+o); err != nil {
				return err
			}
		}
	}
	for _, b := range c.Bitfields {
		if err := claim(goName(b.Name), b.Name); err != nil {
			return err
		}
		for _, f := range b.Fields {
			if err := claim(enumConst(b.Name, f), b.Name+"::"+f); err != nil {
				return err
			}
		}
	}
	for _, r := range c.Records {
		if err := claim(goName(r.Name), r.Name); err != nil {
			return err
		}
	}
	return nil
}
