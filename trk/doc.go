// Package trk decodes and encodes Trick binary data recording logs (.trk files).
//
// A .trk file is a header followed by a row region. The header is a 10-byte
// format tag, a variable count, and one descriptor per variable (name, unit,
// type identifier, declared width). Every row holds one fixed-width
// little-endian field per variable, in descriptor order, without padding.
//
// # Decoding
//
// Decoder reads the header once, then decodes rows until the input is exhausted
// and transposes them into one Column per variable. Every value is widened to
// float64:
//
//	dec, err := trk.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	ds, err := dec.Decode()
//	if err != nil {
//	    return err
//	}
//	points, err := ds.XY("sys.exec.out.time", "dyn.cannon.pos[0]")
//
// Row field widths come from the variable's type, not from the declared width
// stored in the header. Bit-fields are the exception: they occupy the declared
// width, clamped to 4 bytes.
//
// Any structural failure aborts the whole decode; no partial Dataset is
// returned. Errors are *errs.DecodeError values carrying the byte offset at
// which the failure was detected.
//
// # Encoding
//
// Encoder builds .trk data from variable definitions and float64 rows. Each
// value is narrowed to its variable's type with range checks:
//
//	enc, _ := trk.NewEncoder()
//	_ = enc.AddVariable("sys.exec.out.time", "s", format.IDDouble)
//	_ = enc.AddVariable("dyn.cannon.pos[0]", "m", format.IDDouble)
//	_ = enc.AppendRow(0.0, 0.0)
//	_ = enc.AppendRow(0.1, 1.2)
//	data, err := enc.Finish()
//
// # Compression
//
// Both directions optionally pass the complete byte stream through a compress
// codec (Zstd, S2 or LZ4). Offsets in decode errors refer to the decompressed
// stream.
//
// # Thread Safety
//
// Decoder, RowDecoder and Encoder are not safe for concurrent use. A Dataset is
// read-only once returned and may be shared between goroutines.
package trk
