package codegen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/signadot/tagdef/schema"
)

func newContext(t *testing.T, defs string, opts ...Option) *Context {
	t.Helper()
	f, err := schema.Decode([]byte(defs), "test")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	c := NewContext(opts...)
	if err := c.Add(f); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return c
}

func resolvedContext(t *testing.T, defs string, opts ...Option) *Context {
	t.Helper()
	c := newContext(t, defs, opts...)
	if err := c.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return c
}

func generate(t *testing.T, c *Context) *Files {
	t.Helper()
	files, err := c.GenerateFiles()
	if err != nil {
		t.Fatalf("GenerateFiles() error = %v", err)
	}
	fset := token.NewFileSet()
	for a, src := range files {
		if _, err := parser.ParseFile(fset, Artifact(a).String()+".go", src, parser.AllErrors); err != nil {
			t.Fatalf("generated %s does not parse: %v\n%s", Artifact(a), err, src)
		}
	}
	return files
}

func names(rs []*schema.Record) []string {
	res := make([]string, len(rs))
	for i, r := range rs {
		res[i] = r.Name
	}
	return res
}
