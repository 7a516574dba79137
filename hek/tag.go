package hek

// Tag is implemented by every generated record.
type Tag interface {
	// GenerateHEKTagData converts the record to HEK tag data, prefixed by a
	// tag file header with a checksum when headerClass is not nil. With
	// clearOnSave, embedded arrays and data are released as they are
	// written.
	GenerateHEKTagData(headerClass *FourCC, clearOnSave bool) []byte

	// CacheFormat applies default values.
	CacheFormat()

	// CacheDeformat reverts CacheFormat and clears cache only fields.
	CacheDeformat()

	// RefactorReferences applies replacements to every dependency and
	// returns how many were replaced.
	RefactorReferences(replacements []Replacement) int
}

// Postprocessor is implemented by records needing work after parsing HEK
// data, when parsing is asked to postprocess.
type Postprocessor interface {
	PostprocessHEKData() error
}

// Postprocess calls PostprocessHEKData if v implements Postprocessor.
func Postprocess(v any) error {
	if p, ok := v.(Postprocessor); ok {
		return p.PostprocessHEKData()
	}
	return nil
}
