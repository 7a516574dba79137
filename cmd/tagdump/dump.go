package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tagdef/codegen"
	"github.com/signadot/tagdef/hek"
	"github.com/signadot/tagdef/tagvalue"
)

// dumper turns tag files of one record type into ordered YAML documents.
type dumper struct {
	c      *codegen.Context
	codec  *tagvalue.Codec
	layout *codegen.Layout
	verify bool
	log    *slog.Logger
}

func newDumper(c *codegen.Context, record string) (*dumper, error) {
	l := c.Layout(record)
	if l == nil {
		return nil, fmt.Errorf("%w: %q", tagvalue.ErrUnknownRecord, record)
	}
	return &dumper{
		c:      c,
		codec:  tagvalue.New(c),
		layout: l,
		log:    slog.New(slog.DiscardHandler),
	}, nil
}

func (d *dumper) dump(path string, data []byte) (yaml.MapSlice, error) {
	if err := hek.VerifyChecksum(data); err != nil {
		if d.verify || !errors.Is(err, hek.ErrChecksum) {
			return nil, err
		}
		d.log.Warn(err.Error(), "file", path)
	}
	r, h, err := d.codec.Decode(d.layout.Record.Name, data)
	if err != nil {
		return nil, err
	}
	return yaml.MapSlice{
		{Key: "file", Value: path},
		{Key: "class", Value: tagvalue.ClassName(h.TagClass)},
		{Key: "crc32", Value: fmt.Sprintf("0x%08X", h.CRC32)},
		{Key: d.layout.Record.Name, Value: d.record(d.layout, r)},
	}, nil
}

// record orders the values of r as the fields of l.
func (d *dumper) record(l *codegen.Layout, r tagvalue.Record) yaml.MapSlice {
	m := make(yaml.MapSlice, 0, len(r))
	for _, s := range l.Slots {
		if s.GoName == "" {
			continue
		}
		v, ok := r[s.Field.Name]
		if !ok {
			continue
		}
		m = append(m, yaml.MapItem{Key: s.Field.Name, Value: d.value(s.Kind, v)})
	}
	return m
}

func (d *dumper) value(k codegen.Kind, v any) any {
	switch v := v.(type) {
	case tagvalue.Record:
		keys := []string{"from", "to"}
		if _, ok := k.(*codegen.Dependency); ok {
			keys = []string{"class", "path"}
		}
		m := make(yaml.MapSlice, len(keys))
		for i, key := range keys {
			m[i] = yaml.MapItem{Key: key, Value: v[key]}
		}
		return m
	case []tagvalue.Record:
		var el *codegen.Layout
		if rk, ok := k.(*codegen.Reflexive); ok {
			el = d.c.Layout(rk.Name)
		}
		res := make([]any, len(v))
		for i, e := range v {
			if el == nil {
				res[i] = map[string]any(e)
				continue
			}
			res[i] = d.record(el, e)
		}
		return res
	case []byte:
		return hex.EncodeToString(v)
	}
	return v
}
