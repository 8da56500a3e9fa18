package format

type (
	// TypeTag identifies the primitive type of a logged variable.
	TypeTag uint8
	// CompressionType identifies the compression applied to a whole .trk payload.
	CompressionType uint8
)

const (
	TypeInvalid          TypeTag = 0x0 // TypeInvalid is the zero value and never appears in a registry.
	TypeInt8             TypeTag = 0x1 // TypeInt8 represents an 8-bit signed integer (char).
	TypeUint8            TypeTag = 0x2 // TypeUint8 represents an 8-bit unsigned integer (unsigned char).
	TypeInt16            TypeTag = 0x3 // TypeInt16 represents a 16-bit signed integer (short).
	TypeUint16           TypeTag = 0x4 // TypeUint16 represents a 16-bit unsigned integer (unsigned short).
	TypeInt32            TypeTag = 0x5 // TypeInt32 represents a 32-bit signed integer (int).
	TypeUint32           TypeTag = 0x6 // TypeUint32 represents a 32-bit unsigned integer (unsigned int).
	TypeInt64            TypeTag = 0x7 // TypeInt64 represents a 64-bit signed integer (long, long long).
	TypeUint64           TypeTag = 0x8 // TypeUint64 represents a 64-bit unsigned integer (unsigned long, unsigned long long).
	TypeFloat32          TypeTag = 0x9 // TypeFloat32 represents an IEEE-754 single precision float.
	TypeFloat64          TypeTag = 0xA // TypeFloat64 represents an IEEE-754 double precision float.
	TypeBitField         TypeTag = 0xB // TypeBitField represents a signed bit-field stored in its containing integer.
	TypeUnsignedBitField TypeTag = 0xC // TypeUnsignedBitField represents an unsigned bit-field stored in its containing integer.
	TypeBool             TypeTag = 0xD // TypeBool represents a one byte boolean.
	typeTagEnd           TypeTag = 0xE // typeTagEnd marks the end of the valid tag range.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed payload.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

// MaxBitFieldWidth is the largest storage width, in bytes, of a bit-field's containing integer.
const MaxBitFieldWidth = 4

// IsValid reports whether t is one of the defined type tags.
func (t TypeTag) IsValid() bool {
	return t > TypeInvalid && t < typeTagEnd
}

// IsBitField reports whether t is a signed or unsigned bit-field.
func (t TypeTag) IsBitField() bool {
	return t == TypeBitField || t == TypeUnsignedBitField
}

// Width returns the intrinsic storage width of t in bytes.
//
// Bit-fields have no intrinsic width: their width comes from the descriptor's
// declared width, so Width returns 0 for them and for invalid tags.
func (t TypeTag) Width() int {
	switch t {
	case TypeInt8, TypeUint8, TypeBool:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// FieldWidth returns the number of bytes a field of type t occupies in a row,
// given the width declared for it in the header.
//
// Only bit-fields consult declared; their width is clamped to MaxBitFieldWidth.
func (t TypeTag) FieldWidth(declared uint32) int {
	if !t.IsBitField() {
		return t.Width()
	}

	if declared > MaxBitFieldWidth {
		return MaxBitFieldWidth
	}

	return int(declared)
}

func (t TypeTag) String() string {
	switch t {
	case TypeInt8:
		return "Int8"
	case TypeUint8:
		return "Uint8"
	case TypeInt16:
		return "Int16"
	case TypeUint16:
		return "Uint16"
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "Uint32"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "Uint64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBitField:
		return "BitField"
	case TypeUnsignedBitField:
		return "UnsignedBitField"
	case TypeBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
