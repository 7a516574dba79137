package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownType  = errors.New("unknown field type")
	ErrUnknownClass = errors.New("unknown tag class")
	ErrDefault      = errors.New("invalid default")
	ErrCycle        = errors.New("circular dependencies detected")
	ErrLayout       = errors.New("layout error")
	ErrNotResolved  = errors.New("definitions are not resolved")
)

// Cycle is a chain of records that contain themselves.
type Cycle struct {
	// Path starts and ends with the same record.
	Path []string
}

func (c *Cycle) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(c.Path, " -> "))
}

func (c *Cycle) Unwrap() error {
	return ErrCycle
}
