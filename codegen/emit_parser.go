package codegen

func sizeConst(l *Layout) string {
	return goName(l.Record.Name) + "Size"
}

func offsetConst(l *Layout, s *Slot) string {
	return lowerFirst(goName(l.Record.Name)) + "Offset" + s.GoName
}

func (c *Context) emitParserDecls(f *goFile, l *Layout) {
	t := goName(l.Record.Name)
	f.p("// %s is the size of the fixed part of %s.", sizeConst(l), t)
	f.p("const %s = %d", sizeConst(l), l.Size)
	f.nl()
	var named []*Slot
	for _, s := range l.Slots {
		if s.GoName != "" {
			named = append(named, s)
		}
	}
	if len(named) > 0 {
		f.p("const (")
		for _, s := range named {
			f.p("%s = %d", offsetConst(l, s), s.Offset)
		}
		f.p(")")
		f.nl()
	}
	f.p("var _ hek.Tag = (*%s)(nil)", t)
	f.nl()
}
