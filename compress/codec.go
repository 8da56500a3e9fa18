package compress

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data.
	// The input slice is not modified. The result may alias data for the no-op codec.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload.
	// It returns an error if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates the Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Detect identifies the compression of data from its magic number.
//
// Only Zstd and LZ4 frames carry a magic number. S2 blocks and raw .trk data
// return false; the caller must then rely on FromFileName or configuration.
func Detect(data []byte) (format.CompressionType, bool) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd, true
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4, true
	default:
		return format.CompressionNone, false
	}
}

// FromFileName returns the compression implied by the file name suffix:
// ".zst", ".s2" or ".lz4". Any other name yields format.CompressionNone.
func FromFileName(name string) format.CompressionType {
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return format.CompressionZstd
	case strings.HasSuffix(name, ".s2"):
		return format.CompressionS2
	case strings.HasSuffix(name, ".lz4"):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}
