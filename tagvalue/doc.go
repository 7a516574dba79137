// Package tagvalue reads and writes tag data as generic values, driven by
// the layouts of a resolved [codegen.Context] instead of generated code.
//
// Values of a [Record] follow these conventions:
//
//   - integers are int64 and floats float64
//   - compound scalars such as Point3D are []any of their components
//   - TagString is a string
//   - enums are the option name, or int64 if out of range
//   - bitfields are []string of set flags, or int64 if unnamed bits are set
//   - fixed arrays are []any, bounds are a Record with "from" and "to"
//   - dependencies are a Record with "class" and "path"
//   - reflexives are []Record and data is []byte
//
// Encoding accepts any Go numeric type where a number is expected.
package tagvalue
