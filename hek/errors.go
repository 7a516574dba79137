package hek

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeader = errors.New("invalid tag file header")
	ErrChecksum      = errors.New("tag file checksum mismatch")
	ErrLeftoverData  = errors.New("invalid tag file; tag data was left over")
	ErrShortData     = errors.New("invalid tag data; unexpected end of data")
	ErrInvalidPath   = errors.New("invalid tag path")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrInvalidFlag   = errors.New("invalid bitfield flag")
	ErrBadPointer    = errors.New("invalid cache pointer")
	ErrUnknownTag    = errors.New("unknown tag id")
	ErrInvalidCount  = errors.New("invalid reflexive count")
)

// ShortData reports that the field at where needs need bytes but only have
// remain.
func ShortData(where string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, %d remain", ErrShortData, where, need, have)
}
