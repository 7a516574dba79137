package codegen

// zeroValue is the zero value of a field's Go type.
func zeroValue(k Kind) string {
	switch k := k.(type) {
	case *Scalar:
		if k.IsArray() || k.Type.Composite() {
			return goType(k) + "{}"
		}
		return "0"
	case *Bounded, *Dependency:
		return goType(k) + "{}"
	}
	return "nil"
}

// isZero is a condition that holds if the field has its zero value.
func isZero(x string, k Kind) string {
	switch k := k.(type) {
	case *Scalar:
		if k.Type.Composite() {
			return x + " == (" + zeroValue(k) + ")"
		}
		return x + " == 0"
	case *Bounded:
		return x + ".From == 0 && " + x + ".To == 0"
	}
	return ""
}

func (c *Context) emitCacheFormat(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	f.p("// CacheFormat applies the defaults of %s to fields left zero.", t)
	f.p("func (s *%s) CacheFormat() {", t)
	f.p("if s.cacheFormatted {")
	f.p("return")
	f.p("}")
	for _, s := range l.Slots {
		if s.Default == nil {
			continue
		}
		x := "s." + s.GoName
		f.p("if %s {", isZero(x, s.Kind))
		if _, ok := s.Kind.(*Bounded); ok {
			f.p("%s.From, %s.To = %s, %s", x, x, s.Default.From, s.Default.To)
		} else {
			f.p("%s = %s", x, s.Default.Value)
		}
		f.p("}")
	}
	for _, s := range l.Reflexives() {
		f.p("for i := range s.%s {", s.GoName)
		f.p("s.%s[i].CacheFormat()", s.GoName)
		f.p("}")
	}
	f.p("s.cacheFormatted = true")
	f.p("}")
	f.nl()
}

func (c *Context) emitCacheDeformat(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	f.p("// CacheDeformat reverts defaulted fields of %s to zero and clears", t)
	f.p("// cache only fields.")
	f.p("func (s *%s) CacheDeformat() {", t)
	f.p("if !s.cacheFormatted {")
	f.p("return")
	f.p("}")
	for _, s := range l.Slots {
		x := "s." + s.GoName
		switch {
		case s.Default != nil:
			if _, ok := s.Kind.(*Bounded); ok {
				f.p("if %s.From == %s && %s.To == %s {", x, s.Default.From, x, s.Default.To)
			} else if k, ok := s.Kind.(*Scalar); ok && k.Type.Composite() {
				f.p("if %s == (%s) {", x, s.Default.Value)
			} else {
				f.p("if %s == %s {", x, s.Default.Value)
			}
			f.p("%s = %s", x, zeroValue(s.Kind))
			f.p("}")
		case s.Field.CacheOnly && s.GoName != "":
			f.p("%s = %s", x, zeroValue(s.Kind))
		}
	}
	for _, s := range l.Reflexives() {
		f.p("for i := range s.%s {", s.GoName)
		f.p("s.%s[i].CacheDeformat()", s.GoName)
		f.p("}")
	}
	f.p("s.cacheFormatted = false")
	f.p("}")
	f.nl()
}
