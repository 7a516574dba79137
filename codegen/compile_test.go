package codegen

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// predictedResource is the hand written record generated code refers to
// by default.
const predictedResource = `package tagdata

import hek "github.com/signadot/tagdef/hek"

const PredictedResourceSize = 8

type PredictedResource struct {
	Type  uint16
	Index uint16
	Tag   uint32
}

func (s *PredictedResource) GenerateHEKTagData(headerClass *hek.FourCC, clearOnSave bool) []byte {
	data := make([]byte, PredictedResourceSize)
	hek.Put(data, s.Type)
	hek.Put(data[2:], s.Index)
	hek.Put(data[4:], s.Tag)
	return data
}

func (s *PredictedResource) parseHEKTagData(fixed, tail []byte, postprocess bool) (int, error) {
	return 0, s.parseCacheFileData(nil, fixed)
}

func (s *PredictedResource) parseCacheFileData(_ hek.CacheMap, fixed []byte) error {
	s.Type = hek.Get[uint16](fixed)
	s.Index = hek.Get[uint16](fixed[2:])
	s.Tag = hek.Get[uint32](fixed[4:])
	return nil
}

func (s *PredictedResource) CacheFormat()   {}
func (s *PredictedResource) CacheDeformat() {}

func (s *PredictedResource) RefactorReferences([]hek.Replacement) int { return 0 }
`

const generatedTest = `package tagdata

import (
	"errors"
	"reflect"
	"testing"

	hek "github.com/signadot/tagdef/hek"
)

func sample() *Thing {
	return &Thing{
		Base:    Base{Mode: ModeOff},
		Speed:   3.5,
		Tint:    hek.ColorRGB{Red: 0.25, Green: 0.5, Blue: 0.75},
		Range:   hek.Bounds[float32]{From: 0.5, To: 4},
		Weights: [3]int16{-1, 0, 1},
		Secret:  7,
		Model:   hek.Dependency{Class: hek.MakeFourCC("unit"), Path: "characters\\cyborg"},
		Items: []Item{
			{Flags: FlagsB, Icon: hek.Dependency{Class: hek.MakeFourCC("bitm"), Path: "ui\\icon"}},
			{Flags: FlagsA | FlagsB, Icon: hek.Dependency{Class: hek.MakeFourCC("bitm")}},
		},
		Resources: []PredictedResource{{Type: 1, Index: 2, Tag: 3}},
		Data:      []byte{1, 2, 3},
	}
}

func TestRoundTrip(t *testing.T) {
	class := hek.MakeFourCC("thng")
	file := sample().GenerateHEKTagData(&class, false)
	if err := hek.VerifyChecksum(file); err != nil {
		t.Fatal(err)
	}
	got, err := ParseThingHEKTagFile(file, false)
	if err != nil {
		t.Fatal(err)
	}
	want := sample()
	want.Secret = 0
	if !reflect.DeepEqual(want, got) {
		t.Errorf("round trip:\nwant %+v\ngot  %+v", want, got)
	}

	if _, err := ParseThingHEKTagFile(append(file[:len(file):len(file)], 0), false); !errors.Is(err, hek.ErrLeftoverData) {
		t.Errorf("trailing byte: got %v, want %v", err, hek.ErrLeftoverData)
	}
	if _, err := ParseThingHEKTagFile(file[:len(file)-1], false); !errors.Is(err, hek.ErrShortData) {
		t.Errorf("truncated: got %v, want %v", err, hek.ErrShortData)
	}
}

func TestCacheFormat(t *testing.T) {
	s := &Thing{Secret: 7}
	s.CacheFormat()
	if s.Mode != ModeOn || s.Speed != 2 || s.Range != (hek.Bounds[float32]{From: 1, To: 2}) {
		t.Errorf("defaults not applied: %+v", s)
	}
	got, _, err := ParseThingHEKTagData(s.GenerateHEKTagData(nil, false), false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(&Thing{}, got) {
		t.Errorf("defaults saved: %+v", got)
	}
}

func TestRefactorReferences(t *testing.T) {
	s := sample()
	n := s.RefactorReferences([]hek.Replacement{{
		From: hek.Dependency{Class: hek.NoneFourCC, Path: "characters/cyborg"},
		To:   hek.Dependency{Class: hek.NoneFourCC, Path: "characters\\elite"},
	}})
	if n != 1 || s.Model.Path != "characters\\elite" || s.Model.Class != hek.MakeFourCC("unit") {
		t.Errorf("replaced %d, model %v", n, s.Model)
	}
}

func TestCacheFileData(t *testing.T) {
	fixed := make([]byte, ItemSize)
	hek.Put(fixed[itemOffsetFlags:], FlagsA)
	hek.Put(fixed[itemOffsetIcon:], hek.MakeFourCC("bitm"))
	hek.Put(fixed[itemOffsetIcon+hek.DependencyTagIDOffset:], hek.TagID(0))
	m := &hek.MemoryCache{
		Base:  0x1000,
		Bytes: fixed,
		Tags:  []hek.CacheTag{{Path: "ui\\icon", Class: hek.MakeFourCC("bitm")}},
	}
	got, err := ParseItemCacheFileData(m, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if got.Flags != FlagsA || got.Icon.Path != "ui\\icon" {
		t.Errorf("got %+v", got)
	}
}

func TestEmptyElements(t *testing.T) {
	data := (&Holder{Items: make([]Empty, 3)}).GenerateHEKTagData(nil, false)
	got, n, err := ParseHolderHEKTagData(data, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(data) || len(got.Items) != 3 {
		t.Errorf("read %d of %d bytes, %d items", n, len(data), len(got.Items))
	}

	huge := make([]byte, HolderSize)
	hek.Put(huge[holderOffsetItems:], uint32(1<<31))
	if _, _, err := ParseHolderHEKTagData(huge, false); !errors.Is(err, hek.ErrInvalidCount) {
		t.Errorf("got %v, want %v", err, hek.ErrInvalidCount)
	}
}
`

// TestGeneratedPackage compiles the generated files together with a hand
// written PredictedResource and runs their tests.
func TestGeneratedPackage(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	goCmd, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}
	defs := strings.TrimSuffix(thingDefs, "]") + `,
	{"type": "struct", "name": "Empty", "fields": []},
	{"type": "struct", "name": "Holder", "fields": [
		{"name": "items", "type": "TagReflexive", "struct": "Empty"}
	]}
]`
	files := generate(t, resolvedContext(t, defs))

	// inside the module so the runtime import resolves
	dir, err := os.MkdirTemp(".", "generated")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	for a, src := range files {
		if err := os.WriteFile(filepath.Join(dir, Artifact(a).String()+".go"), src, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	extra := map[string]string{
		"predicted_resource.go": predictedResource,
		"tagdata_test.go":       generatedTest,
	}
	for name, src := range extra {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cmd := exec.CommandContext(t.Context(), goCmd, "test", "-count=1", "./"+filepath.Base(dir))
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go test of generated code: %v\n%s", err, out)
	}
}
