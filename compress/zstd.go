package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// This is the recommended codec for archived logs: recorded simulation data
// repeats heavily between rows and compresses well.
//
// The implementation is selected at build time, see zstd_pure.go and zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
