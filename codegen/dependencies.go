package codegen

import (
	"github.com/signadot/tagdef/schema"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	ordered
)

// orderer places records depth first: the parent, then the element record
// of every reflexive in field order, then the record itself.
type orderer struct {
	c     *Context
	state map[string]visitState
	path  []string
	order []*schema.Record
}

func (c *Context) orderRecords() ([]*schema.Record, error) {
	o := &orderer{
		c:     c,
		state: make(map[string]visitState, len(c.Records)),
		order: make([]*schema.Record, 0, len(c.Records)),
	}
	for _, r := range c.Records {
		if err := o.add(r.Name); err != nil {
			return nil, err
		}
	}
	return o.order, nil
}

func (o *orderer) add(name string) error {
	switch o.state[name] {
	case ordered:
		return nil
	case visiting:
		return &Cycle{Path: findCyclePath(o.path, name)}
	}
	r := o.c.reg.Record(name)
	if r == nil {
		if !o.c.tolerated[name] {
			attrs := []any{"name", name}
			if n := len(o.path); n > 0 {
				attrs = append(attrs, "referenced-by", o.path[n-1])
			}
			o.c.log.Warn("unknown struct", attrs...)
		}
		return nil
	}
	o.state[name] = visiting
	o.path = append(o.path, name)
	for _, dep := range dependencies(r) {
		if err := o.add(dep); err != nil {
			return err
		}
	}
	o.path = o.path[:len(o.path)-1]
	o.state[name] = ordered
	o.order = append(o.order, r)
	return nil
}

// dependencies lists the records r must follow, each once.
func dependencies(r *schema.Record) []string {
	var deps []string
	seen := make(map[string]bool)
	if r.Inherits != "" {
		seen[r.Inherits] = true
		deps = append(deps, r.Inherits)
	}
	for _, f := range r.Fields {
		if f.Type != schema.TypeReflexive || seen[f.Struct] {
			continue
		}
		seen[f.Struct] = true
		deps = append(deps, f.Struct)
	}
	return deps
}

// findCyclePath extracts the cycle path from the current DFS path.
func findCyclePath(path []string, cycleStart string) []string {
	startIdx := -1
	for i, name := range path {
		if name == cycleStart {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return append(append([]string(nil), path...), cycleStart)
	}
	cycle := make([]string, 0, len(path)-startIdx+1)
	cycle = append(cycle, path[startIdx:]...)
	cycle = append(cycle, cycleStart)
	return cycle
}
