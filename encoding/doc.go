// Package encoding provides the low-level primitive codecs of the trk binary log format.
//
// A .trk file is built from a handful of fixed-width little-endian primitives
// (8/16/32/64-bit integers, 32/64-bit floats, one byte booleans, bit-fields stored
// in their containing integer) and length-prefixed, NUL-terminated strings. This
// package decodes and encodes those primitives; it knows nothing about headers or
// rows, which live in the section and trk packages.
//
// # Primitive Decoders
//
// Every decoder takes a byte span whose length must equal the intrinsic width of
// the type and returns ErrShortBuffer (wrapped) otherwise:
//
//	v, err := encoding.DecodeUint16([]byte{0x34, 0x12}) // 0x1234
//
// DecodeValue dispatches on a format.TypeTag and widens the result to float64,
// which is how row values are stored in columns:
//
//	f, err := encoding.DecodeValue(format.TypeInt32, span)
//
// # Strings
//
// Names and units are stored as a uint32 length followed by that many bytes. The
// text ends at the first NUL byte, or at the end of the span when none is present.
// CString performs that trimming and validates the result as UTF-8.
//
// # Cursor
//
// Cursor walks a resident byte slice and keeps the absolute offset of the next
// unread byte, so callers can attach precise offsets to errors.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. A Cursor is not safe for
// concurrent use.
package encoding
