// Package section defines the header structures of the trk binary log format.
//
// A .trk file written by a Trick data recording group has two regions: a
// self-describing header followed by fixed-layout binary rows. This package
// reads and writes the header; row decoding lives in the trk package.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Format tag (10 bytes, opaque, e.g. "Trick-10-L")        │
//	├─────────────────────────────────────────────────────────┤
//	│ Parameter count (uint32)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Descriptor records (variable, one per parameter)        │
//	├─────────────────────────────────────────────────────────┤
//	│ Rows (parameter count fields each, until end of input)  │
//	└─────────────────────────────────────────────────────────┘
//
// # Descriptor Record
//
//	Field          | Type     | Description
//	---------------|----------|-----------------------------------------------
//	name_length    | uint32   | Byte length of the name span
//	name           | []byte   | Variable name, NUL-terminated or unterminated
//	unit_length    | uint32   | Byte length of the unit span
//	unit           | []byte   | Unit string, may be empty
//	type_id        | uint32   | Trick type identifier (see format.Registry)
//	declared_width | uint32   | sizeof() recorded by Trick, informational
//
// All integers are little-endian regardless of the host platform.
//
// # Field Widths
//
// The width of a field in the row region is the intrinsic width of its type,
// never the declared width, except for bit-fields whose storage width is the
// declared width clamped to four bytes. See VariableDescriptor.FieldWidth.
package section
