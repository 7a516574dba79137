package codegen

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		defs string
		want []string
	}{
		{
			name: "declaration order without dependencies",
			defs: `[
				{"type": "struct", "name": "A", "fields": []},
				{"type": "struct", "name": "B", "fields": []}
			]`,
			want: []string{"A", "B"},
		},
		{
			name: "parent first",
			defs: `[
				{"type": "struct", "name": "Child", "inherits": "Parent", "fields": []},
				{"type": "struct", "name": "Parent", "fields": []}
			]`,
			want: []string{"Parent", "Child"},
		},
		{
			name: "parent then reflexives in field order",
			defs: `[
				{"type": "struct", "name": "Tag", "inherits": "Base", "fields": [
					{"name": "second", "type": "TagReflexive", "struct": "Second"},
					{"name": "first", "type": "TagReflexive", "struct": "First"},
					{"name": "again", "type": "TagReflexive", "struct": "Second"}
				]},
				{"type": "struct", "name": "First", "fields": []},
				{"type": "struct", "name": "Second", "fields": [
					{"name": "leaf", "type": "TagReflexive", "struct": "Leaf"}
				]},
				{"type": "struct", "name": "Leaf", "fields": []},
				{"type": "struct", "name": "Base", "fields": []}
			]`,
			want: []string{"Base", "Leaf", "Second", "First", "Tag"},
		},
		{
			name: "unknown reflexive target is skipped",
			defs: `[
				{"type": "struct", "name": "A", "fields": [
					{"name": "r", "type": "TagReflexive", "struct": "PredictedResource"}
				]}
			]`,
			want: []string{"A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := resolvedContext(t, tt.defs)
			if diff := cmp.Diff(tt.want, names(c.Order)); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
			checkTopological(t, c)

			// resolving again yields the same order
			first := names(c.Order)
			if err := c.Resolve(); err != nil {
				t.Fatalf("second Resolve() error = %v", err)
			}
			if diff := cmp.Diff(first, names(c.Order)); diff != "" {
				t.Errorf("Order not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

func checkTopological(t *testing.T, c *Context) {
	t.Helper()
	pos := make(map[string]int)
	for i, r := range c.Order {
		pos[r.Name] = i
	}
	if len(pos) != len(c.Records) {
		t.Errorf("order has %d records, want %d", len(pos), len(c.Records))
	}
	for _, r := range c.Order {
		for _, dep := range dependencies(r) {
			i, ok := pos[dep]
			if !ok {
				continue
			}
			if i > pos[r.Name] {
				t.Errorf("%s ordered before its dependency %s", r.Name, dep)
			}
		}
	}
}

func TestOrderCycle(t *testing.T) {
	c := newContext(t, `[
		{"type": "struct", "name": "A", "fields": [
			{"name": "b", "type": "TagReflexive", "struct": "B"}
		]},
		{"type": "struct", "name": "B", "fields": [
			{"name": "a", "type": "TagReflexive", "struct": "A"}
		]}
	]`)
	err := c.Resolve()
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("Resolve() error = %v, want %v", err, ErrCycle)
	}
	var cycle *Cycle
	if !errors.As(err, &cycle) {
		t.Fatalf("error %T is not a *Cycle", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "A"}, cycle.Path); diff != "" {
		t.Errorf("cycle path mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "A -> B -> A") {
		t.Errorf("error %q does not show the cycle", err)
	}
}

func TestOrderSelfReference(t *testing.T) {
	c := newContext(t, `[
		{"type": "struct", "name": "Node", "fields": [
			{"name": "children", "type": "TagReflexive", "struct": "Node"}
		]}
	]`)
	if err := c.Resolve(); !errors.Is(err, ErrCycle) {
		t.Errorf("Resolve() error = %v, want %v", err, ErrCycle)
	}
}

func TestOrderWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	resolvedContext(t, `[
		{"type": "struct", "name": "A", "fields": [
			{"name": "missing", "type": "TagReflexive", "struct": "Missing"},
			{"name": "resources", "type": "TagReflexive", "struct": "PredictedResource"}
		]}
	]`, WithLogger(logger))
	out := buf.String()
	if !strings.Contains(out, "unknown struct") || !strings.Contains(out, "name=Missing") {
		t.Errorf("missing warning for unknown struct, log:\n%s", out)
	}
	if !strings.Contains(out, "referenced-by=A") {
		t.Errorf("warning does not name the referencing record, log:\n%s", out)
	}
	if strings.Contains(out, "PredictedResource") {
		t.Errorf("tolerated record produced a warning, log:\n%s", out)
	}
}

func TestOrderTolerated(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	resolvedContext(t, `[
		{"type": "struct", "name": "A", "fields": [
			{"name": "external", "type": "TagReflexive", "struct": "External"},
			{"name": "resources", "type": "TagReflexive", "struct": "PredictedResource"}
		]}
	]`, WithLogger(logger), WithTolerated("External"))
	out := buf.String()
	if strings.Contains(out, "External") {
		t.Errorf("tolerated record produced a warning, log:\n%s", out)
	}
	if !strings.Contains(out, "PredictedResource") {
		t.Errorf("replaced tolerated set still tolerates PredictedResource, log:\n%s", out)
	}
}

func TestFindCyclePath(t *testing.T) {
	got := findCyclePath([]string{"X", "A", "B"}, "A")
	if diff := cmp.Diff([]string{"A", "B", "A"}, got); diff != "" {
		t.Errorf("findCyclePath() mismatch (-want +got):\n%s", diff)
	}
}
