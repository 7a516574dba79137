package hek

import (
	"encoding/binary"
	"fmt"
)

// Put encodes v at the start of b. b must be large enough for v, which is
// guaranteed by the offsets of generated code.
func Put[T any](b []byte, v T) {
	if _, err := binary.Encode(b, binary.BigEndian, v); err != nil {
		panic(fmt.Sprintf("hek: put %T: %v", v, err))
	}
}

// Get decodes a T from the start of b.
func Get[T any](b []byte) T {
	var v T
	if _, err := binary.Decode(b, binary.BigEndian, &v); err != nil {
		panic(fmt.Sprintf("hek: get %T: %v", v, err))
	}
	return v
}

// SizeOf returns the encoded size of a T.
func SizeOf[T any]() int {
	var v T
	return binary.Size(v)
}

// FourCC is a four character code stored as a big-endian integer.
type FourCC uint32

// NoneFourCC stands for no tag class.
const NoneFourCC FourCC = 0xFFFFFFFF

// MakeFourCC builds a FourCC from its four characters.
func MakeFourCC(s string) FourCC {
	var b [4]byte
	copy(b[:], s)
	return FourCC(binary.BigEndian.Uint32(b[:]))
}

func (c FourCC) String() string {
	if c == NoneFourCC {
		return "none"
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(c))
	return string(b[:])
}

// TagID identifies a tag within a cache file.
type TagID uint32

// NullTagID references no tag.
const NullTagID TagID = 0xFFFFFFFF

func (id TagID) IsNull() bool {
	return id == NullTagID
}

// Pointer is an address in the cache form.
type Pointer uint32

type Point2D struct{ X, Y float32 }

type Point3D struct{ X, Y, Z float32 }

type Vector2D struct{ I, J float32 }

type Vector3D struct{ I, J, K float32 }

type Euler2D struct{ Yaw, Pitch float32 }

type Euler3D struct{ Yaw, Pitch, Roll float32 }

type Quaternion struct{ I, J, K, W float32 }

type Plane2D struct {
	Vector Vector2D
	W      float32
}

type Plane3D struct {
	Vector Vector3D
	W      float32
}

type ColorRGB struct{ Red, Green, Blue float32 }

type ColorARGB struct{ Alpha, Red, Green, Blue float32 }

type Matrix [3]Vector3D

type Point2DInt struct{ X, Y int16 }

type Rectangle2D struct{ Top, Left, Bottom, Right int16 }

// TagString is a NUL padded 32 byte string.
type TagString [32]byte

func (s TagString) String() string {
	for i, c := range s {
		if c == 0 {
			return string(s[:i])
		}
	}
	return string(s[:])
}

// MakeTagString truncates s to fit a TagString with its terminator.
func MakeTagString(s string) TagString {
	var res TagString
	copy(res[:len(res)-1], s)
	return res
}

// Bounds is a from/to pair.
type Bounds[T any] struct {
	From T
	To   T
}
