package hek

import "fmt"

// CacheMap resolves the pointers and tag ids of the cache form.
type CacheMap interface {
	// Data returns size bytes at p.
	Data(p Pointer, size int) ([]byte, error)

	// Tag returns the path and class of a tag.
	Tag(id TagID) (path string, class FourCC, err error)
}

// CacheTag is a tag known to a MemoryCache.
type CacheTag struct {
	Path  string
	Class FourCC
}

// MemoryCache is a CacheMap over one contiguous buffer mapped at Base. The
// index of a tag in Tags is its id.
type MemoryCache struct {
	Base  Pointer
	Bytes []byte
	Tags  []CacheTag
}

func (m *MemoryCache) Data(p Pointer, size int) ([]byte, error) {
	if p < m.Base || size < 0 {
		return nil, fmt.Errorf("%w: 0x%08X", ErrBadPointer, uint32(p))
	}
	off := int(p - m.Base)
	if off+size > len(m.Bytes) {
		return nil, fmt.Errorf("%w: 0x%08X+%d is out of bounds", ErrBadPointer, uint32(p), size)
	}
	return m.Bytes[off : off+size], nil
}

func (m *MemoryCache) Tag(id TagID) (string, FourCC, error) {
	if id.IsNull() || int(id) >= len(m.Tags) {
		return "", NoneFourCC, fmt.Errorf("%w: 0x%08X", ErrUnknownTag, uint32(id))
	}
	t := m.Tags[id]
	return t.Path, t.Class, nil
}
