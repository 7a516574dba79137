package hek

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPutGet(t *testing.T) {
	b := make([]byte, 16)
	Put(b, Point3D{X: 1, Y: -2, Z: 0.5})
	if got := Get[Point3D](b); got != (Point3D{X: 1, Y: -2, Z: 0.5}) {
		t.Errorf("Get[Point3D]() = %v", got)
	}
	Put(b, uint16(0x1234))
	if b[0] != 0x12 || b[1] != 0x34 {
		t.Errorf("Put(uint16) not big-endian: % x", b[:2])
	}
	type mode uint16
	Put(b[4:], mode(7))
	if got := Get[mode](b[4:]); got != 7 {
		t.Errorf("Get[mode]() = %d", got)
	}
	Put(b, Bounds[int16]{From: -1, To: 300})
	if diff := cmp.Diff(Bounds[int16]{From: -1, To: 300}, Get[Bounds[int16]](b)); diff != "" {
		t.Errorf("bounds (-want +got):\n%s", diff)
	}
}

func TestPutShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Put into a short buffer did not panic")
		}
	}()
	Put(make([]byte, 2), uint32(1))
}

func TestSizes(t *testing.T) {
	tests := map[string]struct{ got, want int }{
		"Point2D":     {SizeOf[Point2D](), 8},
		"Plane3D":     {SizeOf[Plane3D](), 16},
		"ColorARGB":   {SizeOf[ColorARGB](), 16},
		"Matrix":      {SizeOf[Matrix](), 36},
		"Rectangle2D": {SizeOf[Rectangle2D](), 8},
		"TagString":   {SizeOf[TagString](), 32},
		"Header":      {SizeOf[TagFileHeader](), TagFileHeaderSize},
	}
	for name, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("size of %s = %d, want %d", name, tt.got, tt.want)
		}
	}
}

func TestFourCC(t *testing.T) {
	c := MakeFourCC("jpt!")
	if uint32(c) != 0x6A707421 {
		t.Errorf("MakeFourCC() = %08X", uint32(c))
	}
	if c.String() != "jpt!" || NoneFourCC.String() != "none" {
		t.Errorf("String() = %q, %q", c.String(), NoneFourCC.String())
	}
}

func TestTagString(t *testing.T) {
	s := MakeTagString("default")
	if s.String() != "default" {
		t.Errorf("String() = %q", s.String())
	}
	long := MakeTagString("0123456789012345678901234567890123456789")
	if len(long.String()) != 31 {
		t.Errorf("long string kept %d bytes", len(long.String()))
	}
}
