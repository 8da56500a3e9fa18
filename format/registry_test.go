package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Lookup(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		id    uint32
		tag   TypeTag
		cname string
	}{
		{IDChar, TypeInt8, "char"},
		{IDUnsignedChar, TypeUint8, "unsigned char"},
		{IDShort, TypeInt16, "short"},
		{IDUnsignedShort, TypeUint16, "unsigned short"},
		{IDInt, TypeInt32, "int"},
		{IDUnsignedInt, TypeUint32, "unsigned int"},
		{IDLong, TypeInt64, "long"},
		{IDUnsignedLong, TypeUint64, "unsigned long"},
		{IDFloat, TypeFloat32, "float"},
		{IDDouble, TypeFloat64, "double"},
		{IDBitField, TypeBitField, "bit field"},
		{IDUnsignedBitField, TypeUnsignedBitField, "unsigned bit field"},
		{IDLongLong, TypeInt64, "long long"},
		{IDUnsignedLongLong, TypeUint64, "unsigned long long"},
		{IDBool, TypeBool, "bool"},
	}

	for _, tt := range tests {
		t.Run(tt.cname, func(t *testing.T) {
			tag, ok := reg.Lookup(tt.id)
			require.True(t, ok)
			require.Equal(t, tt.tag, tag)
			require.Equal(t, tt.cname, reg.CTypeName(tt.id))
		})
	}

	require.Equal(t, len(tests), reg.Len())
}

func TestDefaultRegistry_UnassignedIDs(t *testing.T) {
	reg := DefaultRegistry()

	for _, id := range []uint32{0, 3, 16, 18, 255, 1 << 31} {
		tag, ok := reg.Lookup(id)
		require.False(t, ok, "id %d", id)
		require.Equal(t, TypeInvalid, tag)
		require.Empty(t, reg.CTypeName(id))
	}

	require.Equal(t, []uint32{1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 17}, reg.IDs())
}

func TestNewRegistry(t *testing.T) {
	entries := map[uint32]RegistryEntry{
		11: {Tag: TypeFloat64, CName: "double"},
		99: {Tag: TypeInvalid, CName: "bogus"},
	}

	reg := NewRegistry(entries)
	require.Equal(t, 1, reg.Len())

	// The registry owns its copy of the table
	entries[12] = RegistryEntry{Tag: TypeBitField}
	_, ok := reg.Lookup(12)
	require.False(t, ok)

	_, ok = reg.Lookup(99)
	require.False(t, ok)

	tag, ok := reg.Lookup(11)
	require.True(t, ok)
	require.Equal(t, TypeFloat64, tag)

	// The default table is unaffected
	_, ok = DefaultRegistry().Lookup(12)
	require.True(t, ok)
}

func TestTypeTag_Width(t *testing.T) {
	tests := []struct {
		tag   TypeTag
		width int
	}{
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeBool, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeInt32, 4},
		{TypeUint32, 4},
		{TypeFloat32, 4},
		{TypeInt64, 8},
		{TypeUint64, 8},
		{TypeFloat64, 8},
		{TypeBitField, 0},
		{TypeUnsignedBitField, 0},
		{TypeInvalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			require.Equal(t, tt.width, tt.tag.Width())
		})
	}
}

func TestTypeTag_FieldWidth(t *testing.T) {
	t.Run("intrinsic width ignores declared width", func(t *testing.T) {
		require.Equal(t, 8, TypeFloat64.FieldWidth(4))
		require.Equal(t, 4, TypeFloat32.FieldWidth(32))
		require.Equal(t, 1, TypeBool.FieldWidth(0))
	})

	t.Run("bit-field uses declared width", func(t *testing.T) {
		require.Equal(t, 1, TypeBitField.FieldWidth(1))
		require.Equal(t, 2, TypeUnsignedBitField.FieldWidth(2))
		require.Equal(t, 0, TypeBitField.FieldWidth(0))
	})

	t.Run("bit-field width is clamped", func(t *testing.T) {
		require.Equal(t, MaxBitFieldWidth, TypeBitField.FieldWidth(8))
		require.Equal(t, MaxBitFieldWidth, TypeUnsignedBitField.FieldWidth(1<<20))
	})
}

func TestTypeTag_Predicates(t *testing.T) {
	require.False(t, TypeInvalid.IsValid())
	require.True(t, TypeInt8.IsValid())
	require.True(t, TypeBool.IsValid())
	require.False(t, typeTagEnd.IsValid())

	require.True(t, TypeBitField.IsBitField())
	require.True(t, TypeUnsignedBitField.IsBitField())
	require.False(t, TypeInt32.IsBitField())

	require.Equal(t, "Unknown", TypeTag(200).String())
}

func TestCompressionType(t *testing.T) {
	require.True(t, CompressionNone.IsValid())
	require.True(t, CompressionLZ4.IsValid())
	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(9).IsValid())

	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "Unknown", CompressionType(9).String())
}
