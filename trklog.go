// Package trklog reads Trick binary data recording logs (.trk files).
//
// A Trick simulation records the variables of a data recording group into a
// .trk file: a header naming each variable with its unit and C type, followed
// by one fixed-layout little-endian row per recording cycle. trklog decodes
// such a file into a column per variable, every sample widened to float64.
//
// # Basic Usage
//
// Loading a log by run directory and group name:
//
//	import "github.com/arloliu/trklog"
//
//	lf := trklog.NewLogFile("log_cannon", "RUN_test")
//	ds, err := trklog.Load(lf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	points, err := ds.XY(trklog.TimeVariable, "dyn.cannon.pos[0]")
//	for _, p := range points {
//	    fmt.Printf("t=%g x=%g\n", p.X, p.Y)
//	}
//
// Decoding bytes already in memory:
//
//	ds, err := trklog.Decode(data)
//
// Writing a log:
//
//	enc, _ := trklog.NewEncoder()
//	_ = enc.AddVariable(trklog.TimeVariable, "s", format.IDDouble)
//	_ = enc.AppendRow(0.0)
//	data, _ := enc.Finish()
//
// # Package Structure
//
// This package wraps the trk package for the common cases. The building blocks
// live in their own packages: format (type identifiers and registry), encoding
// (primitive decoders), section (header and descriptors), compress (optional
// whole-file compression) and errs (error kinds with byte offsets).
package trklog

import (
	"fmt"
	"os"

	"github.com/arloliu/trklog/compress"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/internal/hash"
	"github.com/arloliu/trklog/trk"
)

// TimeVariable is the simulation time variable Trick records in every log.
// It is the conventional x axis for plotting.
const TimeVariable = "sys.exec.out.time"

const (
	LogFileExt    = ".trk"
	HeaderFileExt = ".header"
)

// LogFile locates a data recording group's files inside a run directory.
type LogFile struct {
	// Name is the recording group name, e.g. "log_cannon".
	Name string
	// Path is the run directory.
	Path string
	// LogFileName is Name with the .trk extension.
	LogFileName string
	// HeaderFileName is Name with the .header extension. The companion header
	// file is recorded here but never read.
	HeaderFileName string
	// FullPath is the path of the .trk file: Path + "/" + LogFileName.
	FullPath string
}

// NewLogFile resolves the files of the recording group name in directory path.
//
// Paths are joined by plain concatenation, so path must not end with a slash
// unless the doubled separator is acceptable.
func NewLogFile(name, path string) LogFile {
	logName := name + LogFileExt

	return LogFile{
		Name:           name,
		Path:           path,
		LogFileName:    logName,
		HeaderFileName: name + HeaderFileExt,
		FullPath:       path + "/" + logName,
	}
}

// Load reads and decodes the .trk file of lf.
func Load(lf LogFile, opts ...trk.DecoderOption) (*trk.Dataset, error) {
	return DecodeFile(lf.FullPath, opts...)
}

// DecodeFile reads and decodes the .trk file at path.
//
// The compression is taken from the file name suffix (.zst, .s2, .lz4) or,
// failing that, from the data's magic number. An explicit trk.WithCompression
// in opts takes precedence.
//
// Parameters:
//   - path: Path of the log file
//   - opts: Optional decoder configuration
//
// Returns:
//   - *trk.Dataset: The decoded log
//   - error: A read error or any error of trk.Decoder.Decode
func DecodeFile(path string, opts ...trk.DecoderOption) (*trk.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	comp := compress.FromFileName(path)
	if comp == format.CompressionNone {
		comp, _ = compress.Detect(data)
	}

	opts = append([]trk.DecoderOption{trk.WithCompression(comp)}, opts...)

	ds, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Decode decodes a complete .trk byte stream.
//
// Available options:
//   - trk.WithRegistry(reg)
//   - trk.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - trk.WithUnsupportedTypes(tags...)
func Decode(data []byte, opts ...trk.DecoderOption) (*trk.Dataset, error) {
	dec, err := trk.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}

// NewDecoder creates a decoder for data. See trk.NewDecoder.
func NewDecoder(data []byte, opts ...trk.DecoderOption) (*trk.Decoder, error) {
	return trk.NewDecoder(data, opts...)
}

// NewEncoder creates a log encoder. See trk.NewEncoder.
//
// Available options:
//   - trk.WithEncoderRegistry(reg)
//   - trk.WithFormatTag(tag)
//   - trk.WithEncoderCompression(format.CompressionNone|Zstd|S2|LZ4)
func NewEncoder(opts ...trk.EncoderOption) (*trk.Encoder, error) {
	return trk.NewEncoder(opts...)
}

// VariableID returns the 64-bit hash trk.Dataset uses to index variable names.
func VariableID(name string) uint64 {
	return hash.ID(name)
}
