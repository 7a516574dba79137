package codegen

func (c *Context) emitEnumSupport(f *goFile) {
	for _, e := range c.Enums {
		t := goName(e.Name)
		names := lowerFirst(t) + "Names"
		f.p("var %s = [...]string{", names)
		for _, o := range e.Options {
			f.p("%q,", o)
		}
		f.p("}")
		f.nl()
		f.p("func (v %s) String() string {", t)
		f.p("if int(v) < len(%s) {", names)
		f.p("return %s[v]", names)
		f.p("}")
		f.p("return fmt.Sprintf(\"%s(%%d)\", uint16(v))", t)
		f.p("}")
		f.nl()
		f.p("// Parse%s returns the %s option named s.", t, t)
		f.p("func Parse%s(s string) (%s, error) {", t, t)
		f.p("for i, name := range %s {", names)
		f.p("if name == s {")
		f.p("return %s(i), nil", t)
		f.p("}")
		f.p("}")
		f.p("return 0, fmt.Errorf(\"%%w: %%q is not a %s\", hek.ErrInvalidEnum, s)", t)
		f.p("}")
		f.nl()
	}
	for _, b := range c.Bitfields {
		t := goName(b.Name)
		names := lowerFirst(t) + "Names"
		f.p("var %s = [...]string{", names)
		for _, n := range b.Fields {
			f.p("%q,", n)
		}
		f.p("}")
		f.nl()
		f.p("// Names returns the names of the flags set in v.")
		f.p("func (v %s) Names() []string {", t)
		f.p("var names []string")
		f.p("for i, name := range %s {", names)
		f.p("if v&(1<<i) != 0 {")
		f.p("names = append(names, name)")
		f.p("}")
		f.p("}")
		f.p("return names")
		f.p("}")
		f.nl()
		f.p("func (v %s) String() string {", t)
		f.p("return strings.Join(v.Names(), \"|\")")
		f.p("}")
		f.nl()
		f.p("// Parse%s returns the %s with the named flags set.", t, t)
		f.p("func Parse%s(names ...string) (%s, error) {", t, t)
		f.p("var v %s", t)
		f.p("next:")
		f.p("for _, s := range names {")
		f.p("for i, name := range %s {", names)
		f.p("if name == s {")
		f.p("v |= 1 << i")
		f.p("continue next")
		f.p("}")
		f.p("}")
		f.p("return 0, fmt.Errorf(\"%%w: %%q is not a %s flag\", hek.ErrInvalidFlag, s)", t)
		f.p("}")
		f.p("return v, nil")
		f.p("}")
		f.nl()
	}
}
