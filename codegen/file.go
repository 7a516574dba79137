package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"regexp"
	"slices"
	"strings"
)

const generatedHeader = "// Code generated by tagdef-codegen. DO NOT EDIT.\n"

// goFile accumulates the body of a generated file. Imports are derived
// from the package qualifiers the body uses.
type goFile struct {
	artifact Artifact
	pkg      string
	runtime  string
	body     bytes.Buffer
}

func (c *Context) newFile(a Artifact) *goFile {
	return &goFile{artifact: a, pkg: c.pkg, runtime: c.runtime}
}

func (f *goFile) p(format string, args ...any) {
	fmt.Fprintf(&f.body, format, args...)
	f.body.WriteByte('\n')
}

func (f *goFile) nl() {
	f.body.WriteByte('\n')
}

// comment writes text as line comments, one per line of text.
func (f *goFile) comment(text string) {
	for line := range strings.SplitSeq(strings.TrimSpace(text), "\n") {
		f.p("// %s", strings.TrimSpace(line))
	}
}

var qualifiers = []struct {
	name string
	re   *regexp.Regexp
}{
	{"fmt", regexp.MustCompile(`\bfmt\.`)},
	{"hek", regexp.MustCompile(`\bhek\.`)},
	{"strings", regexp.MustCompile(`\bstrings\.`)},
}

func (f *goFile) imports() []string {
	var code bytes.Buffer
	for line := range bytes.Lines(f.body.Bytes()) {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			continue
		}
		code.Write(line)
	}
	var res []string
	for _, q := range qualifiers {
		if !q.re.Match(code.Bytes()) {
			continue
		}
		if q.name == "hek" {
			res = append(res, fmt.Sprintf("hek %q", f.runtime))
			continue
		}
		res = append(res, fmt.Sprintf("%q", q.name))
	}
	slices.Sort(res)
	return res
}

// Bytes renders the file and formats it.
func (f *goFile) Bytes() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "\npackage %s\n", f.pkg)
	if imports := f.imports(); len(imports) > 0 {
		b.WriteString("\nimport (\n")
		for _, imp := range imports {
			fmt.Fprintf(&b, "\t%s\n", imp)
		}
		b.WriteString(")\n")
	}
	if f.body.Len() > 0 {
		b.WriteByte('\n')
		b.Write(f.body.Bytes())
	}
	out, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: formatting %s: %w", ErrLayout, f.artifact, err)
	}
	return out, nil
}
