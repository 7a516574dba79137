package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

type entity struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Options  []string        `json:"options"`
	Fields   json.RawMessage `json:"fields"`
	Inherits string          `json:"inherits"`
	Size     int             `json:"size"`
	Width    int             `json:"width"`
	Comment  string          `json:"comment"`
}

// FileName returns the definition file name used for a path: its base
// name up to the first dot.
func FileName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// Decode decodes the JSON content of a definition file. Entities keep
// their declaration order. An entity type other than enum, bitfield or
// struct is an error.
func Decode(data []byte, name string) (*File, error) {
	var entities []entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	f := &File{Name: name}
	for i := range entities {
		e := &entities[i]
		switch e.Type {
		case EntityEnum:
			f.Enums = append(f.Enums, &Enum{
				Name:    e.Name,
				Options: e.Options,
				Comment: e.Comment,
				File:    name,
			})
		case EntityBitfield:
			var flags []string
			if err := decodeFields(e, &flags); err != nil {
				return nil, &Error{File: name, Entity: e.Name, Err: err}
			}
			f.Bitfields = append(f.Bitfields, &Bitfield{
				Name:    e.Name,
				Fields:  flags,
				Width:   e.Width,
				Comment: e.Comment,
				File:    name,
			})
		case EntityStruct:
			var fields []*Field
			if err := decodeFields(e, &fields); err != nil {
				return nil, &Error{File: name, Entity: e.Name, Err: err}
			}
			f.Records = append(f.Records, &Record{
				Name:     e.Name,
				Inherits: e.Inherits,
				Fields:   fields,
				Size:     e.Size,
				Comment:  e.Comment,
				File:     name,
			})
		default:
			return nil, &Error{File: name, Entity: e.Name, Err: fmt.Errorf("%w %s", ErrUnknownType, e.Type)}
		}
	}
	return f, nil
}

func decodeFields(e *entity, v any) error {
	if len(e.Fields) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Fields, v); err != nil {
		return fmt.Errorf("%w: fields: %w", ErrInvalid, err)
	}
	return nil
}

// UnmarshalJSON decodes a field, remembering whether "default" was given.
func (f *Field) UnmarshalJSON(data []byte) error {
	type plain Field
	if err := json.Unmarshal(data, (*plain)(f)); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, f.declaredDefault = keys["default"]
	return nil
}
