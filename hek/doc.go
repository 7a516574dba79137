// Package hek is the runtime support of code generated by tagdef-codegen.
//
// Generated records convert between an editable Go value and two byte
// layouts: the HEK form written to .tag files, made of a fixed size part
// followed by a relocatable tail holding paths, embedded arrays and data,
// and the cache form, where the same fixed size parts are addressed by
// pointers through a [CacheMap]. All multi-byte values are big-endian.
package hek
