package codegen

import (
	"fmt"
	"log/slog"

	"github.com/signadot/tagdef/debug"
	"github.com/signadot/tagdef/schema"
)

// Context accumulates definitions and the results of resolving them.
type Context struct {
	Enums     []*schema.Enum
	Bitfields []*schema.Bitfield
	Records   []*schema.Record

	// Order holds Records such that every record follows its parent and
	// the element records of its reflexives. It is set by Resolve.
	Order []*schema.Record

	extractHidden bool
	pkg           string
	runtime       string
	tolerated     map[string]bool
	log           *slog.Logger

	reg     *schema.Registry
	layouts map[string]*Layout
}

func NewContext(opts ...Option) *Context {
	c := &Context{
		pkg:     DefaultPackage,
		runtime: DefaultRuntime,
		log:     slog.New(slog.DiscardHandler),
		reg:     schema.NewRegistry(),
	}
	WithTolerated(DefaultTolerated...)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) ExtractHidden() bool {
	return c.extractHidden
}

// Registry gives access to every definition added so far.
func (c *Context) Registry() *schema.Registry {
	return c.reg
}

// Add normalizes and registers the definitions of f. Adding a file
// invalidates any previous resolution.
func (c *Context) Add(f *schema.File) error {
	if err := schema.Normalize(f); err != nil {
		return err
	}
	if err := c.reg.Register(f); err != nil {
		return err
	}
	if debug.Expand() {
		for _, r := range f.Records {
			for _, fd := range r.Fields {
				if fd.Type == schema.TypeDependency {
					c.log.Info("expanded classes", "record", r.Name, "field", fd.Name, "classes", fd.Classes)
				}
			}
		}
	}
	c.Enums = append(c.Enums, f.Enums...)
	c.Bitfields = append(c.Bitfields, f.Bitfields...)
	c.Records = append(c.Records, f.Records...)
	c.Order = nil
	c.layouts = nil
	return nil
}

// Resolve orders the records and computes their layouts.
func (c *Context) Resolve() error {
	if err := c.checkTypeNames(); err != nil {
		return err
	}
	order, err := c.orderRecords()
	if err != nil {
		return err
	}
	if debug.Order() {
		names := make([]string, len(order))
		for i, r := range order {
			names[i] = r.Name
		}
		c.log.Info("record order", "records", names)
	}
	layouts := make(map[string]*Layout, len(order))
	for _, r := range order {
		l, err := c.computeLayout(r, layouts)
		if err != nil {
			return err
		}
		layouts[r.Name] = l
		if debug.Layout() {
			c.log.Info("layout", "record", r.Name, "size", l.Size, "slots", len(l.Slots))
			debug.LogAny(l.offsets())
		}
	}
	c.Order = order
	c.layouts = layouts
	return nil
}

// Layout returns the layout of a resolved record, nil if there is none.
func (c *Context) Layout(name string) *Layout {
	return c.layouts[name]
}

func (c *Context) resolved() error {
	if c.layouts == nil && len(c.Records) > 0 {
		return fmt.Errorf("%w: call Resolve after Add", ErrNotResolved)
	}
	return nil
}
