package codegen

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// defaultValue is a default rendered as Go expressions.
type defaultValue struct {
	// Value is assigned to a scalar.
	Value string
	// From and To are assigned to a bounded pair.
	From, To string
}

// renderDefault validates a default against the kind of its field.
// Defaults apply to single numeric scalars, flat compounds and bounds.
func (c *Context) renderDefault(k Kind, v any) (*defaultValue, error) {
	switch k := k.(type) {
	case *Scalar:
		if k.IsArray() {
			return nil, fmt.Errorf("%w: arrays have no default", ErrDefault)
		}
		t := k.Type
		if !t.Composite() {
			s, err := renderScalar(&t, v)
			if err != nil {
				return nil, err
			}
			return &defaultValue{Value: s}, nil
		}
		if !t.Flat {
			return nil, fmt.Errorf("%w: %s has no default", ErrDefault, t.Name)
		}
		parts, err := components(t.Base, t.Components, v)
		if err != nil {
			return nil, err
		}
		return &defaultValue{Value: t.GoType + "{" + strings.Join(parts, ", ") + "}"}, nil
	case *Bounded:
		if k.Type.Composite() {
			return nil, fmt.Errorf("%w: %s bounds have no default", ErrDefault, k.Type.Name)
		}
		parts, err := components(k.Type.Base, 2, v)
		if err != nil {
			return nil, err
		}
		return &defaultValue{From: parts[0], To: parts[1]}, nil
	}
	return nil, fmt.Errorf("%w: only scalars have defaults", ErrDefault)
}

// renderScalar renders a number, or the name of an enum option.
func renderScalar(t *ScalarType, v any) (string, error) {
	if s, ok := v.(string); ok && t.Enum != nil {
		if !slices.Contains(t.Enum.Options, s) {
			return "", fmt.Errorf("%w: %q is not an option of %s", ErrDefault, s, t.Enum.Name)
		}
		return enumConst(t.Enum.Name, s), nil
	}
	return renderNumber(t.Base, v)
}

// components renders n components from a list of n numbers or from a
// single number used for every component.
func components(base Base, n int, v any) ([]string, error) {
	var vs []any
	switch v := v.(type) {
	case []any:
		vs = v
	default:
		vs = slices.Repeat([]any{v}, n)
	}
	if len(vs) != n {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrDefault, n, len(vs))
	}
	res := make([]string, n)
	for i, x := range vs {
		s, err := renderNumber(base, x)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

func renderNumber(base Base, v any) (string, error) {
	var n float64
	switch v := v.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return "", fmt.Errorf("%w: %v (%T) is not a number", ErrDefault, v, v)
	}
	if base.IsFloat() {
		if math.Abs(n) > math.MaxFloat32 {
			return "", fmt.Errorf("%w: %v overflows float", ErrDefault, n)
		}
		return strconv.FormatFloat(n, 'g', -1, 32), nil
	}
	if n != math.Trunc(n) {
		return "", fmt.Errorf("%w: %v is not an integer", ErrDefault, n)
	}
	lo, hi := base.Range()
	if n < lo || n > hi {
		return "", fmt.Errorf("%w: %v out of range", ErrDefault, n)
	}
	return strconv.FormatInt(int64(n), 10), nil
}
