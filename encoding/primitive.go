package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/trklog/endian"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
)

var le = endian.GetLittleEndianEngine()

func checkWidth(b []byte, width int, name string) error {
	if len(b) != width {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrShortBuffer, name, width, len(b))
	}

	return nil
}

// DecodeInt8 decodes a one byte signed integer.
func DecodeInt8(b []byte) (int8, error) {
	if err := checkWidth(b, 1, "int8"); err != nil {
		return 0, err
	}

	return int8(b[0]), nil //nolint:gosec
}

// DecodeUint8 decodes a one byte unsigned integer.
func DecodeUint8(b []byte) (uint8, error) {
	if err := checkWidth(b, 1, "uint8"); err != nil {
		return 0, err
	}

	return b[0], nil
}

// DecodeInt16 decodes a little-endian 16-bit signed integer.
func DecodeInt16(b []byte) (int16, error) {
	if err := checkWidth(b, 2, "int16"); err != nil {
		return 0, err
	}

	return int16(le.Uint16(b)), nil //nolint:gosec
}

// DecodeUint16 decodes a little-endian 16-bit unsigned integer.
func DecodeUint16(b []byte) (uint16, error) {
	if err := checkWidth(b, 2, "uint16"); err != nil {
		return 0, err
	}

	return le.Uint16(b), nil
}

// DecodeInt32 decodes a little-endian 32-bit signed integer.
func DecodeInt32(b []byte) (int32, error) {
	if err := checkWidth(b, 4, "int32"); err != nil {
		return 0, err
	}

	return int32(le.Uint32(b)), nil //nolint:gosec
}

// DecodeUint32 decodes a little-endian 32-bit unsigned integer.
func DecodeUint32(b []byte) (uint32, error) {
	if err := checkWidth(b, 4, "uint32"); err != nil {
		return 0, err
	}

	return le.Uint32(b), nil
}

// DecodeInt64 decodes a little-endian 64-bit signed integer.
func DecodeInt64(b []byte) (int64, error) {
	if err := checkWidth(b, 8, "int64"); err != nil {
		return 0, err
	}

	return int64(le.Uint64(b)), nil //nolint:gosec
}

// DecodeUint64 decodes a little-endian 64-bit unsigned integer.
func DecodeUint64(b []byte) (uint64, error) {
	if err := checkWidth(b, 8, "uint64"); err != nil {
		return 0, err
	}

	return le.Uint64(b), nil
}

// DecodeFloat32 decodes a little-endian IEEE-754 single precision float.
func DecodeFloat32(b []byte) (float32, error) {
	if err := checkWidth(b, 4, "float32"); err != nil {
		return 0, err
	}

	return math.Float32frombits(le.Uint32(b)), nil
}

// DecodeFloat64 decodes a little-endian IEEE-754 double precision float.
func DecodeFloat64(b []byte) (float64, error) {
	if err := checkWidth(b, 8, "float64"); err != nil {
		return 0, err
	}

	return math.Float64frombits(le.Uint64(b)), nil
}

// DecodeBool decodes a one byte boolean. Any non-zero byte is true.
func DecodeBool(b []byte) (bool, error) {
	if err := checkWidth(b, 1, "bool"); err != nil {
		return false, err
	}

	return b[0] != 0, nil
}

// DecodeUnsignedBitField decodes the containing integer of an unsigned bit-field.
// The span may be 1 to format.MaxBitFieldWidth bytes long.
func DecodeUnsignedBitField(b []byte) (uint32, error) {
	if len(b) == 0 || len(b) > format.MaxBitFieldWidth {
		return 0, fmt.Errorf("%w: bit-field needs 1 to %d bytes, got %d",
			errs.ErrShortBuffer, format.MaxBitFieldWidth, len(b))
	}

	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}

	return v, nil
}

// DecodeBitField decodes the containing integer of a signed bit-field,
// sign-extending from the span's most significant bit.
func DecodeBitField(b []byte) (int32, error) {
	u, err := DecodeUnsignedBitField(b)
	if err != nil {
		return 0, err
	}

	shift := uint(32 - 8*len(b)) //nolint:gosec

	return int32(u<<shift) >> shift, nil //nolint:gosec
}
