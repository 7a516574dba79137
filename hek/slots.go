package hek

import (
	"fmt"
	"slices"
	"strings"
)

// Layout of a dependency slot.
const (
	DependencySize              = 16
	DependencyPathPointerOffset = 4
	DependencyPathSizeOffset    = 8
	DependencyTagIDOffset       = 12
)

// Layout of a reflexive slot.
const (
	ReflexiveSize          = 12
	ReflexivePointerOffset = 4
)

// MaxReflexiveCount bounds the element count of a reflexive. Elements of
// an empty record take no bytes, so their count is not bounded by the data.
const MaxReflexiveCount = 0xFFFF

// CheckReflexiveCount rejects an element count read from tag data that
// exceeds MaxReflexiveCount.
func CheckReflexiveCount(where string, n int) error {
	if n < 0 || n > MaxReflexiveCount {
		return fmt.Errorf("%w: %s has %d elements, at most %d", ErrInvalidCount, where, n, MaxReflexiveCount)
	}
	return nil
}

// Layout of a data slot.
const (
	DataSize          = 20
	DataPointerOffset = 12
)

// Dependency references another tag by class and path.
type Dependency struct {
	Class FourCC
	Path  string
}

func (d Dependency) String() string {
	if d.Path == "" {
		return "(none)"
	}
	return d.Path + "." + d.Class.String()
}

// Replacement rewrites references to From into references to To. A From
// class of NoneFourCC matches any class.
type Replacement struct {
	From Dependency
	To   Dependency
}

func (r Replacement) matches(d Dependency) bool {
	if r.From.Class != NoneFourCC && r.From.Class != d.Class {
		return false
	}
	return strings.EqualFold(normalizePath(r.From.Path), normalizePath(d.Path))
}

func normalizePath(p string) string {
	return strings.ReplaceAll(p, "/", "\\")
}

// Refactor applies the first matching replacement whose new class is one
// of allowed and reports whether d changed.
func (d *Dependency) Refactor(replacements []Replacement, allowed []FourCC) bool {
	if d.Path == "" {
		return false
	}
	for _, r := range replacements {
		if !r.matches(*d) {
			continue
		}
		to := r.To
		if to.Class == NoneFourCC {
			to.Class = d.Class
		}
		if len(allowed) > 0 && !slices.Contains(allowed, to.Class) {
			continue
		}
		*d = to
		return true
	}
	return false
}

// ReadPath reads a NUL terminated path of n bytes from the start of tail.
func ReadPath(tail []byte, n int) (string, error) {
	if len(tail) < n+1 {
		return "", ShortData("path", n+1, len(tail))
	}
	if tail[n] != 0 {
		return "", fmt.Errorf("%w: path of %d bytes is not terminated", ErrInvalidPath, n)
	}
	return string(tail[:n]), nil
}
