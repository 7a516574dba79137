package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// colorOutput reports whether to color w and wraps terminals so escape
// sequences work everywhere.
func colorOutput(w io.Writer, force bool) (io.Writer, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return w, force
	}
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if !force && (!tty || os.Getenv("NO_COLOR") != "") {
		return w, false
	}
	return colorable.NewColorable(f), true
}

func property(attr color.Attribute) printer.PrintFunc {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: fmt.Sprintf("\x1b[%dm", attr),
			Suffix: fmt.Sprintf("\x1b[%dm", color.Reset),
		}
	}
}

func colorize(src string) string {
	p := printer.Printer{
		MapKey: property(color.FgHiCyan),
		String: property(color.FgGreen),
		Number: property(color.FgHiMagenta),
		Bool:   property(color.FgHiYellow),
		Anchor: property(color.FgHiBlue),
		Alias:  property(color.FgHiBlue),
	}
	res := p.PrintTokens(lexer.Tokenize(src))
	if !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}
