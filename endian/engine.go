// Package endian provides the byte order used by the trk binary log format.
//
// Trick writes every multi-byte field of a .trk file (header integers and row
// values alike) in little-endian order, independent of the host platform.
// Readers and writers in this module obtain their byte order from this package:
//
//	engine := endian.GetLittleEndianEngine()
//	count := engine.Uint32(data[10:14])
//	buf = engine.AppendUint32(buf, count)
//
// # Thread Safety
//
// The returned EndianEngine values are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary,
// so a single value serves both the decoding and the encoding side.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by trk files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
//
// Trick never emits big-endian logs on the platforms it supports; the engine is
// exposed for tests that need to prove a reader does not depend on host order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
