// Package codegen generates Go code that converts tag records between the
// editable HEK form and the compact cache form.
//
// A [Context] collects normalized definition files, resolves the order in
// which records must be emitted and the byte layout of each record, and
// then renders the generated artifacts:
//
//	c := codegen.NewContext(codegen.WithExtractHidden(true))
//	if err := c.Add(file); err != nil {
//		...
//	}
//	if err := c.Resolve(); err != nil {
//		...
//	}
//	files, err := c.GenerateFiles()
//
// Generated code depends on the runtime package
// github.com/signadot/tagdef/hek.
package codegen
