package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
)

// DecodeValue decodes one field of type tag from b and widens it to float64.
//
// Integers are converted by value, booleans become 0 or 1, and Float32 is widened
// exactly. b must be exactly the field width of tag; bit-fields accept 1 to
// format.MaxBitFieldWidth bytes. Invalid tags return errs.ErrUnsupportedType.
func DecodeValue(tag format.TypeTag, b []byte) (float64, error) {
	switch tag {
	case format.TypeInt8:
		v, err := DecodeInt8(b)
		return float64(v), err
	case format.TypeUint8:
		v, err := DecodeUint8(b)
		return float64(v), err
	case format.TypeInt16:
		v, err := DecodeInt16(b)
		return float64(v), err
	case format.TypeUint16:
		v, err := DecodeUint16(b)
		return float64(v), err
	case format.TypeInt32:
		v, err := DecodeInt32(b)
		return float64(v), err
	case format.TypeUint32:
		v, err := DecodeUint32(b)
		return float64(v), err
	case format.TypeInt64:
		v, err := DecodeInt64(b)
		return float64(v), err
	case format.TypeUint64:
		v, err := DecodeUint64(b)
		return float64(v), err
	case format.TypeFloat32:
		v, err := DecodeFloat32(b)
		return float64(v), err
	case format.TypeFloat64:
		return DecodeFloat64(b)
	case format.TypeBitField:
		v, err := DecodeBitField(b)
		return float64(v), err
	case format.TypeUnsignedBitField:
		v, err := DecodeUnsignedBitField(b)
		return float64(v), err
	case format.TypeBool:
		v, err := DecodeBool(b)
		if v {
			return 1, err
		}

		return 0, err
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, tag)
	}
}

// AppendValue narrows v to type tag and appends its little-endian encoding to dst.
//
// width is the field width in bytes; it is only consulted for bit-fields and must
// otherwise equal tag.Width(). Values outside the range of the target type, and
// NaN for integer types, return errs.ErrValueOutOfRange. Fractional parts are
// truncated toward zero for integer types.
func AppendValue(dst []byte, tag format.TypeTag, width int, v float64) ([]byte, error) {
	switch tag {
	case format.TypeBool, format.TypeFloat32, format.TypeFloat64:
	default:
		// range checks apply to the truncated value
		v = math.Trunc(v)
	}

	switch tag {
	case format.TypeInt8:
		if err := checkRange(tag, v, math.MinInt8, math.MaxInt8); err != nil {
			return dst, err
		}

		return append(dst, byte(int8(v))), nil
	case format.TypeUint8:
		if err := checkRange(tag, v, 0, math.MaxUint8); err != nil {
			return dst, err
		}

		return append(dst, uint8(v)), nil
	case format.TypeBool:
		if v != 0 && !math.IsNaN(v) {
			return append(dst, 1), nil
		}

		return append(dst, 0), nil
	case format.TypeInt16:
		if err := checkRange(tag, v, math.MinInt16, math.MaxInt16); err != nil {
			return dst, err
		}

		return le.AppendUint16(dst, uint16(int16(v))), nil //nolint:gosec
	case format.TypeUint16:
		if err := checkRange(tag, v, 0, math.MaxUint16); err != nil {
			return dst, err
		}

		return le.AppendUint16(dst, uint16(v)), nil
	case format.TypeInt32:
		if err := checkRange(tag, v, math.MinInt32, math.MaxInt32); err != nil {
			return dst, err
		}

		return le.AppendUint32(dst, uint32(int32(v))), nil //nolint:gosec
	case format.TypeUint32:
		if err := checkRange(tag, v, 0, math.MaxUint32); err != nil {
			return dst, err
		}

		return le.AppendUint32(dst, uint32(v)), nil
	case format.TypeInt64:
		// 2^63 is exactly representable; MaxInt64 is not
		if math.IsNaN(v) || v < math.MinInt64 || v >= 1<<63 {
			return dst, outOfRange(tag, v)
		}

		return le.AppendUint64(dst, uint64(int64(v))), nil //nolint:gosec
	case format.TypeUint64:
		if math.IsNaN(v) || v <= -1 || v >= 1<<64 {
			return dst, outOfRange(tag, v)
		}

		return le.AppendUint64(dst, uint64(v)), nil
	case format.TypeFloat32:
		if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
			return dst, outOfRange(tag, v)
		}

		return le.AppendUint32(dst, math.Float32bits(float32(v))), nil
	case format.TypeFloat64:
		return le.AppendUint64(dst, math.Float64bits(v)), nil
	case format.TypeBitField, format.TypeUnsignedBitField:
		return appendBitField(dst, tag, width, v)
	default:
		return dst, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, tag)
	}
}

func appendBitField(dst []byte, tag format.TypeTag, width int, v float64) ([]byte, error) {
	if width <= 0 || width > format.MaxBitFieldWidth {
		return dst, fmt.Errorf("%w: bit-field width %d", errs.ErrUnsupportedType, width)
	}

	bits := 8 * width
	var raw uint32
	if tag == format.TypeBitField {
		lo, hi := -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)-1
		if err := checkRange(tag, v, lo, hi); err != nil {
			return dst, err
		}
		raw = uint32(int32(v)) //nolint:gosec
	} else {
		if err := checkRange(tag, v, 0, math.Ldexp(1, bits)-1); err != nil {
			return dst, err
		}
		raw = uint32(v)
	}

	for i := 0; i < width; i++ {
		dst = append(dst, byte(raw>>(8*i)))
	}

	return dst, nil
}

func checkRange(tag format.TypeTag, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return outOfRange(tag, v)
	}

	return nil
}

func outOfRange(tag format.TypeTag, v float64) error {
	return fmt.Errorf("%w: %v does not fit %s", errs.ErrValueOutOfRange, v, tag)
}
