package trk

import (
	"math"
	"testing"

	"github.com/arloliu/trklog/endian"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/section"
	"github.com/stretchr/testify/require"
)

var cannonNames = []string{"sys.exec.out.time", "dyn.cannon.pos[0]", "dyn.cannon.pos[1]"}

// appendDescriptor appends a raw descriptor record with NUL-terminated strings.
func appendDescriptor(dst []byte, name, unit string, typeID, width uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint32(dst, uint32(len(name)+1)) //nolint:gosec
	dst = append(dst, name...)
	dst = append(dst, 0)
	dst = engine.AppendUint32(dst, uint32(len(unit)+1)) //nolint:gosec
	dst = append(dst, unit...)
	dst = append(dst, 0)
	dst = engine.AppendUint32(dst, typeID)
	dst = engine.AppendUint32(dst, width)

	return dst
}

func appendHeader(dst []byte, count uint32) []byte {
	dst = append(dst, section.DefaultFormatTag...)
	return endian.GetLittleEndianEngine().AppendUint32(dst, count)
}

func appendDoubles(dst []byte, values ...float64) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// cannonLog hand-assembles the three-variable cannon log with the given rows.
func cannonLog(rows ...[3]float64) []byte {
	data := appendHeader(nil, 3)
	data = appendDescriptor(data, cannonNames[0], "s", format.IDDouble, 8)
	data = appendDescriptor(data, cannonNames[1], "m", format.IDDouble, 8)
	data = appendDescriptor(data, cannonNames[2], "m", format.IDDouble, 8)
	for _, r := range rows {
		data = appendDoubles(data, r[0], r[1], r[2])
	}

	return data
}

func decode(t *testing.T, data []byte, opts ...DecoderOption) (*Dataset, error) {
	t.Helper()

	dec, err := NewDecoder(data, opts...)
	require.NoError(t, err)

	return dec.Decode()
}
