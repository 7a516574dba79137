// Package schema holds the definitions read from tag definition files.
//
// A definition file is a JSON array of entities, each tagged with a type of
// "enum", "bitfield" or "struct". [Decode] turns one file into a [File],
// [Normalize] rewrites names into safe identifiers and validates field
// attributes, and [ExpandClasses] closes dependency class lists over the tag
// class hierarchy.
//
// # Related Packages
//
//   - github.com/signadot/tagdef/codegen - orders records and emits Go code
//   - github.com/signadot/tagdef/hek - runtime for the generated code
package schema
