package codegen

// saved reports whether the forward transform writes a slot.
func (c *Context) saved(s *Slot) bool {
	switch {
	case s.GoName == "":
		return false
	case s.Field.CacheOnly && !c.extractHidden:
		return false
	case s.Field.DropOnExtractHidden:
		return false
	}
	return true
}

func (c *Context) emitSave(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	size := sizeConst(l)
	f.p("// GenerateHEKTagData converts %s into HEK tag data. If headerClass is", t)
	f.p("// not nil the data starts with a tag file header of that class.")
	f.p("func (s *%s) GenerateHEKTagData(headerClass *hek.FourCC, clearOnSave bool) []byte {", t)
	f.p("s.CacheDeformat()")
	f.p("data := make([]byte, %s)", size)
	f.p("if headerClass != nil {")
	f.p("data = append(hek.NewTagFileHeader(*headerClass).Bytes(), data...)")
	f.p("}")
	var slots []*Slot
	for _, s := range l.Slots {
		if c.saved(s) {
			slots = append(slots, s)
		}
	}
	if len(slots) > 0 {
		f.p("headerOffset := len(data) - %s", size)
		f.p("b := make([]byte, %s)", size)
		for _, s := range slots {
			c.emitSaveSlot(f, offsetConst(l, s), s)
		}
		f.p("copy(data[headerOffset:], b)")
	}
	f.p("if headerClass != nil {")
	f.p("hek.SetChecksum(data)")
	f.p("}")
	f.p("return data")
	f.p("}")
	f.nl()
}

func (c *Context) emitSaveSlot(f *goFile, off string, s *Slot) {
	x := "s." + s.GoName
	switch k := s.Kind.(type) {
	case *Scalar:
		switch {
		case k.IsArray():
			f.p("for i := range %s {", x)
			f.p("hek.Put(b[%s+i*%d:], %s[i])", off, k.Type.Size(), x)
			f.p("}")
		case c.extractHidden && k.Type.Quantized() && s.Field.Count == 0:
			f.p("hek.Put(b[%s:], hek.Quantize(%s))", off, x)
		default:
			f.p("hek.Put(b[%s:], %s)", off, x)
		}
	case *Bounded:
		f.p("hek.Put(b[%s:], %s.From)", off, x)
		f.p("hek.Put(b[%s+%d:], %s.To)", off, k.Type.Size(), x)
	case *Dependency:
		f.p("hek.Put(b[%s:], %s.Class)", off, x)
		f.p("hek.Put(b[%s+hek.DependencyTagIDOffset:], hek.NullTagID)", off)
		f.p("if n := len(%s.Path); n > 0 {", x)
		f.p("hek.Put(b[%s+hek.DependencyPathSizeOffset:], uint32(n))", off)
		f.p("data = append(data, %s.Path...)", x)
		f.p("data = append(data, 0)")
		f.p("}")
	case *Reflexive:
		elem := goName(k.Name) + "Size"
		f.p("if n := len(%s); n > 0 {", x)
		f.p("hek.Put(b[%s:], uint32(n))", off)
		f.p("first := len(data)")
		f.p("data = append(data, make([]byte, %s*n)...)", elem)
		f.p("for i := range %s {", x)
		f.p("converted := %s[i].GenerateHEKTagData(nil, clearOnSave)", x)
		f.p("copy(data[first+%s*i:], converted[:%s])", elem, elem)
		f.p("data = append(data, converted[%s:]...)", elem)
		f.p("}")
		f.p("if clearOnSave {")
		f.p("%s = nil", x)
		f.p("}")
		f.p("}")
	case *Blob:
		f.p("hek.Put(b[%s:], uint32(len(%s)))", off, x)
		f.p("data = append(data, %s...)", x)
		f.p("if clearOnSave {")
		f.p("%s = nil", x)
		f.p("}")
	case *Pad:
	}
}
