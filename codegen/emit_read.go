package codegen

// emitReadScalar decodes an inline value from fixed.
func emitReadScalar(f *goFile, off string, s *Slot) {
	x := "s." + s.GoName
	switch k := s.Kind.(type) {
	case *Scalar:
		if k.IsArray() {
			f.p("for i := range %s {", x)
			f.p("%s[i] = hek.Get[%s](fixed[%s+i*%d:])", x, k.Type.GoType, off, k.Type.Size())
			f.p("}")
			return
		}
		f.p("%s = hek.Get[%s](fixed[%s:])", x, k.Type.GoType, off)
	case *Bounded:
		f.p("%s.From = hek.Get[%s](fixed[%s:])", x, k.Type.GoType, off)
		f.p("%s.To = hek.Get[%s](fixed[%s+%d:])", x, k.Type.GoType, off, k.Type.Size())
	}
}

func (c *Context) emitReadHEK(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	size := sizeConst(l)
	f.p("// Parse%sHEKTagData parses HEK tag data without a header and reports", t)
	f.p("// how many bytes were consumed.")
	f.p("func Parse%sHEKTagData(data []byte, postprocess bool) (*%s, int, error) {", t, t)
	f.p("if len(data) < %s {", size)
	f.p("return nil, 0, hek.ShortData(%q, %s, len(data))", t, size)
	f.p("}")
	f.p("s := &%s{}", t)
	f.p("read, err := s.parseHEKTagData(data[:%s], data[%s:], postprocess)", size, size)
	f.p("if err != nil {")
	f.p("return nil, 0, err")
	f.p("}")
	f.p("return s, %s + read, nil", size)
	f.p("}")
	f.nl()

	f.p("// Parse%sHEKTagFile parses a tag file. The data after the header must", t)
	f.p("// be consumed exactly.")
	f.p("func Parse%sHEKTagFile(data []byte, postprocess bool) (*%s, error) {", t, t)
	f.p("var s *%s", t)
	f.p("_, err := hek.ParseTagFile(data, func(body []byte) (int, error) {")
	f.p("var read int")
	f.p("var err error")
	f.p("s, read, err = Parse%sHEKTagData(body, postprocess)", t)
	f.p("return read, err")
	f.p("})")
	f.p("if err != nil {")
	f.p("return nil, err")
	f.p("}")
	f.p("return s, nil")
	f.p("}")
	f.nl()

	f.p("func (s *%s) parseHEKTagData(fixed, tail []byte, postprocess bool) (int, error) {", t)
	f.p("read := 0")
	for _, s := range l.Slots {
		if s.GoName == "" {
			continue
		}
		off := offsetConst(l, s)
		where := t + "." + s.Field.Name
		x := "s." + s.GoName
		switch k := s.Kind.(type) {
		case *Scalar, *Bounded:
			emitReadScalar(f, off, s)
		case *Dependency:
			f.p("%s.Class = hek.Get[hek.FourCC](fixed[%s:])", x, off)
			f.p("if n := int(hek.Get[uint32](fixed[%s+hek.DependencyPathSizeOffset:])); n > 0 {", off)
			f.p("path, err := hek.ReadPath(tail[read:], n)")
			f.p("if err != nil {")
			f.p("return 0, fmt.Errorf(\"%%s: %%w\", %q, err)", where)
			f.p("}")
			f.p("%s.Path = path", x)
			f.p("read += n + 1")
			f.p("}")
		case *Reflexive:
			elem := goName(k.Name)
			f.p("if n := int(hek.Get[uint32](fixed[%s:])); n > 0 {", off)
			f.p("if err := hek.CheckReflexiveCount(%q, n); err != nil {", where)
			f.p("return 0, err")
			f.p("}")
			f.p("if need, have := %sSize*n, len(tail)-read; need > have {", elem)
			f.p("return 0, hek.ShortData(%q, need, have)", where)
			f.p("}")
			f.p("block := tail[read : read+%sSize*n]", elem)
			f.p("read += %sSize * n", elem)
			f.p("%s = make([]%s, n)", x, elem)
			f.p("for i := range %s {", x)
			f.p("r, err := %s[i].parseHEKTagData(block[%sSize*i:%sSize*(i+1)], tail[read:], postprocess)", x, elem, elem)
			f.p("if err != nil {")
			f.p("return 0, fmt.Errorf(\"%%s[%%d]: %%w\", %q, i, err)", where)
			f.p("}")
			f.p("read += r")
			f.p("}")
			f.p("}")
		case *Blob:
			f.p("if n := int(hek.Get[uint32](fixed[%s:])); n > 0 {", off)
			f.p("if have := len(tail) - read; n > have {")
			f.p("return 0, hek.ShortData(%q, n, have)", where)
			f.p("}")
			f.p("%s = append([]byte(nil), tail[read:read+n]...)", x)
			f.p("read += n")
			f.p("}")
		}
	}
	f.p("if postprocess {")
	f.p("if err := hek.Postprocess(s); err != nil {")
	f.p("return 0, err")
	f.p("}")
	f.p("}")
	f.p("return read, nil")
	f.p("}")
	f.nl()
}

func (c *Context) emitReadCache(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	size := sizeConst(l)
	f.p("// Parse%sCacheFileData reads a %s from its cache form at p.", t, t)
	f.p("func Parse%sCacheFileData(m hek.CacheMap, p hek.Pointer) (*%s, error) {", t, t)
	f.p("fixed, err := m.Data(p, %s)", size)
	f.p("if err != nil {")
	f.p("return nil, err")
	f.p("}")
	f.p("s := &%s{}", t)
	f.p("if err := s.parseCacheFileData(m, fixed); err != nil {")
	f.p("return nil, err")
	f.p("}")
	f.p("return s, nil")
	f.p("}")
	f.nl()

	f.p("func (s *%s) parseCacheFileData(m hek.CacheMap, fixed []byte) error {", t)
	for _, s := range l.Slots {
		if s.GoName == "" {
			continue
		}
		off := offsetConst(l, s)
		where := t + "." + s.Field.Name
		x := "s." + s.GoName
		switch k := s.Kind.(type) {
		case *Scalar, *Bounded:
			emitReadScalar(f, off, s)
		case *Dependency:
			f.p("%s.Class = hek.Get[hek.FourCC](fixed[%s:])", x, off)
			f.p("if id := hek.Get[hek.TagID](fixed[%s+hek.DependencyTagIDOffset:]); !id.IsNull() {", off)
			f.p("path, class, err := m.Tag(id)")
			f.p("if err != nil {")
			f.p("return fmt.Errorf(\"%%s: %%w\", %q, err)", where)
			f.p("}")
			f.p("%s.Path, %s.Class = path, class", x, x)
			f.p("}")
		case *Reflexive:
			elem := goName(k.Name)
			f.p("if n := int(hek.Get[uint32](fixed[%s:])); n > 0 {", off)
			f.p("if err := hek.CheckReflexiveCount(%q, n); err != nil {", where)
			f.p("return err")
			f.p("}")
			f.p("block, err := m.Data(hek.Get[hek.Pointer](fixed[%s+hek.ReflexivePointerOffset:]), %sSize*n)", off, elem)
			f.p("if err != nil {")
			f.p("return fmt.Errorf(\"%%s: %%w\", %q, err)", where)
			f.p("}")
			f.p("%s = make([]%s, n)", x, elem)
			f.p("for i := range %s {", x)
			f.p("if err := %s[i].parseCacheFileData(m, block[%sSize*i:%sSize*(i+1)]); err != nil {", x, elem, elem)
			f.p("return fmt.Errorf(\"%%s[%%d]: %%w\", %q, i, err)", where)
			f.p("}")
			f.p("}")
			f.p("}")
		case *Blob:
			f.p("if n := int(hek.Get[uint32](fixed[%s:])); n > 0 {", off)
			f.p("d, err := m.Data(hek.Get[hek.Pointer](fixed[%s+hek.DataPointerOffset:]), n)", off)
			f.p("if err != nil {")
			f.p("return fmt.Errorf(\"%%s: %%w\", %q, err)", where)
			f.p("}")
			f.p("%s = append([]byte(nil), d...)", x)
			f.p("}")
		}
	}
	f.p("s.cacheFormatted = true")
	f.p("return nil")
	f.p("}")
	f.nl()
}
