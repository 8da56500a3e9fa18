// Package compress provides the codecs used for compressed .trk payloads.
//
// Trick writes raw .trk files, but long runs are commonly archived compressed
// (run.trk.zst, run.trk.lz4). The trk decoder decompresses such payloads in full
// before decoding, and the trk encoder can compress its output, through the
// codecs in this package.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is used as-is
//   - Zstd (format.CompressionZstd): best ratio, the usual archive choice
//   - S2 (format.CompressionS2): fast block compression from klauspost/compress
//   - LZ4 (format.CompressionLZ4): LZ4 frame format, fastest decompression
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "log")
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(payload)
//
// Detection helpers pick the algorithm from a file name (FromFileName) or from
// the payload's magic number (Detect) for the formats that carry one.
//
// # Zstd Backends
//
// The pure Go klauspost/compress implementation is used by default. Building
// with the gozstd tag and cgo enabled switches to valyala/gozstd, which wraps
// the reference C library.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; pooled encoder
// and decoder state is managed internally with sync.Pool.
package compress
