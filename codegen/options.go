package codegen

import (
	"log/slog"
)

const (
	DefaultPackage = "tagdata"
	DefaultRuntime = "github.com/signadot/tagdef/hek"
)

// DefaultTolerated lists records that generated code expects to be
// written by hand.
var DefaultTolerated = []string{"PredictedResource"}

type Option func(*Context)

// WithExtractHidden makes the forward transform keep cache only fields and
// quantize plain floats.
func WithExtractHidden(on bool) Option {
	return func(c *Context) {
		c.extractHidden = on
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// WithPackage sets the package clause of generated files.
func WithPackage(name string) Option {
	return func(c *Context) {
		c.pkg = name
	}
}

// WithRuntime sets the import path of the hek runtime package.
func WithRuntime(importPath string) Option {
	return func(c *Context) {
		c.runtime = importPath
	}
}

// WithTolerated replaces the set of record names which may be referenced
// without a definition and without a warning.
func WithTolerated(names ...string) Option {
	return func(c *Context) {
		c.tolerated = make(map[string]bool, len(names))
		for _, n := range names {
			c.tolerated[n] = true
		}
	}
}
