package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownType      = errors.New("unknown object type")
	ErrDefaultCacheOnly = errors.New("default AND cache_only cannot be used together in a field since they may be unexpectedly modified")
	ErrInvalid          = errors.New("invalid definition")
	ErrDuplicate        = errors.New("duplicate definition")
)

// Error locates a definition error.
type Error struct {
	File   string
	Entity string
	Field  string
	Err    error
}

func (e *Error) Error() string {
	loc := e.Entity
	if e.Field != "" {
		loc = loc + "::" + e.Field
	}
	if e.File != "" {
		loc = e.File + ": " + loc
	}
	if loc == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s - %v", loc, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
