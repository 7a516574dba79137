package hek

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryCacheData(t *testing.T) {
	m := &MemoryCache{Base: 0x1000, Bytes: []byte{0, 1, 2, 3, 4, 5, 6, 7}}
	tcs := []struct {
		name string
		p    Pointer
		size int
		want []byte
		err  error
	}{
		{name: "start", p: 0x1000, size: 3, want: []byte{0, 1, 2}},
		{name: "end", p: 0x1006, size: 2, want: []byte{6, 7}},
		{name: "empty", p: 0x1008, size: 0, want: []byte{}},
		{name: "before base", p: 0x0FFF, size: 1, err: ErrBadPointer},
		{name: "past end", p: 0x1006, size: 3, err: ErrBadPointer},
		{name: "negative size", p: 0x1000, size: -1, err: ErrBadPointer},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Data(tc.p, tc.size)
			if !errors.Is(err, tc.err) {
				t.Fatalf("got error %v, want %v", err, tc.err)
			}
			if tc.err != nil {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMemoryCacheTag(t *testing.T) {
	m := &MemoryCache{Tags: []CacheTag{
		{Path: `characters\cyborg\cyborg`, Class: MakeFourCC("bipd")},
	}}
	path, class, err := m.Tag(0)
	if err != nil {
		t.Fatal(err)
	}
	if path != `characters\cyborg\cyborg` || class != MakeFourCC("bipd") {
		t.Errorf("got %q %s", path, class)
	}
	for _, id := range []TagID{1, NullTagID} {
		if _, class, err := m.Tag(id); !errors.Is(err, ErrUnknownTag) || class != NoneFourCC {
			t.Errorf("Tag(0x%08X) = %s, %v", uint32(id), class, err)
		}
	}
}

type postprocessed struct {
	calls int
	err   error
}

func (p *postprocessed) PostprocessHEKData() error {
	p.calls++
	return p.err
}

func TestPostprocess(t *testing.T) {
	p := &postprocessed{}
	if err := Postprocess(p); err != nil || p.calls != 1 {
		t.Errorf("got %v after %d calls", err, p.calls)
	}
	p.err = errors.New("boom")
	if err := Postprocess(p); !errors.Is(err, p.err) {
		t.Errorf("got %v, want %v", err, p.err)
	}
	if err := Postprocess(struct{}{}); err != nil {
		t.Errorf("non postprocessor: %v", err)
	}
}
