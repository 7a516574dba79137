package hek

import (
	"fmt"
	"hash/crc32"
)

// TagFileHeaderSize is the size of the header of a .tag file.
const TagFileHeaderSize = 64

const (
	headerChecksumOffset = 40
	blam                 = FourCC(0x626C616D)
)

// TagFileHeader starts every .tag file.
type TagFileHeader struct {
	_          [36]byte
	TagClass   FourCC
	CRC32      uint32
	HeaderSize uint32
	_          [8]byte
	Version    uint16
	Marker     uint16
	Blam       FourCC
}

// NewTagFileHeader returns the header of a tag of the given class.
func NewTagFileHeader(class FourCC) TagFileHeader {
	return TagFileHeader{
		TagClass:   class,
		HeaderSize: TagFileHeaderSize,
		Version:    1,
		Marker:     0x00FF,
		Blam:       blam,
	}
}

// Bytes encodes the header.
func (h TagFileHeader) Bytes() []byte {
	b := make([]byte, TagFileHeaderSize)
	Put(b, h)
	return b
}

// ValidateHeader decodes and checks the header at the start of data. The
// checksum is not verified, see [VerifyChecksum].
func ValidateHeader(data []byte) (TagFileHeader, error) {
	if len(data) < TagFileHeaderSize {
		return TagFileHeader{}, fmt.Errorf("%w: %d bytes is too small", ErrInvalidHeader, len(data))
	}
	h := Get[TagFileHeader](data)
	if h.Blam != blam {
		return h, fmt.Errorf("%w: bad signature %s", ErrInvalidHeader, h.Blam)
	}
	if h.HeaderSize != TagFileHeaderSize {
		return h, fmt.Errorf("%w: header size %d", ErrInvalidHeader, h.HeaderSize)
	}
	return h, nil
}

// Checksum computes the checksum of tag data.
func Checksum(body []byte) uint32 {
	return crc32.ChecksumIEEE(body)
}

// SetChecksum stores in the header of a complete tag file the checksum of
// everything following the header.
func SetChecksum(data []byte) {
	Put(data[headerChecksumOffset:], Checksum(data[TagFileHeaderSize:]))
}

// VerifyChecksum checks the stored checksum of a complete tag file.
func VerifyChecksum(data []byte) error {
	h, err := ValidateHeader(data)
	if err != nil {
		return err
	}
	if got := Checksum(data[TagFileHeaderSize:]); got != h.CRC32 {
		return fmt.Errorf("%w: stored 0x%08X, computed 0x%08X", ErrChecksum, h.CRC32, got)
	}
	return nil
}

// ParseTagFile validates the header of data and hands the rest to
// parseBody, which returns how many bytes it consumed. The body must be
// consumed exactly.
func ParseTagFile(data []byte, parseBody func(body []byte) (int, error)) (TagFileHeader, error) {
	h, err := ValidateHeader(data)
	if err != nil {
		return h, err
	}
	expected := len(data) - TagFileHeaderSize
	read, err := parseBody(data[TagFileHeaderSize:])
	if err != nil {
		return h, err
	}
	switch {
	case read < expected:
		return h, fmt.Errorf("%w: %d of %d bytes", ErrLeftoverData, expected-read, expected)
	case read > expected:
		return h, ShortData("tag data", read, expected)
	}
	return h, nil
}
