package codegen

func (c *Context) emitRefactor(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	var deps []*Slot
	for _, s := range l.Slots {
		if _, ok := s.Kind.(*Dependency); ok {
			deps = append(deps, s)
		}
	}
	f.p("// RefactorReferences applies replacements to the dependencies of %s", t)
	f.p("// and its elements, returning how many were replaced.")
	f.p("func (s *%s) RefactorReferences(replacements []hek.Replacement) int {", t)
	f.p("count := 0")
	for _, s := range deps {
		f.p("if s.%s.Refactor(replacements, %s) {", s.GoName, classesVar(l, s))
		f.p("count++")
		f.p("}")
	}
	for _, s := range l.Reflexives() {
		f.p("for i := range s.%s {", s.GoName)
		f.p("count += s.%s[i].RefactorReferences(replacements)", s.GoName)
		f.p("}")
	}
	f.p("return count")
	f.p("}")
	f.nl()
	for _, s := range deps {
		k := s.Kind.(*Dependency)
		f.p("var %s = []hek.FourCC{", classesVar(l, s))
		for i, cc := range k.FourCCs {
			f.p("0x%08X, // %s", uint32(cc), k.Classes[i])
		}
		f.p("}")
		f.nl()
	}
}

func classesVar(l *Layout, s *Slot) string {
	return lowerFirst(goName(l.Record.Name)) + s.GoName + "Classes"
}
