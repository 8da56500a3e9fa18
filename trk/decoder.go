package trk

import (
	"fmt"

	"github.com/arloliu/trklog/compress"
	"github.com/arloliu/trklog/encoding"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/internal/pool"
	"github.com/arloliu/trklog/section"
)

// Decoder decodes a complete .trk byte stream into a Dataset.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type Decoder struct {
	data []byte
	cfg  *DecoderConfig
}

// NewDecoder creates a Decoder for the given data.
//
// The data is neither copied nor inspected until Decode is called.
//
// Parameters:
//   - data: The whole .trk file contents, compressed if WithCompression is given
//   - opts: Optional configuration (WithRegistry, WithCompression, WithUnsupportedTypes)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: Invalid option
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg, err := newDecoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{data: data, cfg: cfg}, nil
}

// Decode reads the header, then decodes rows until the input is exhausted.
//
// End of input is only accepted between rows. The returned Dataset holds one
// column per descriptor, all of the same length.
//
// Returns:
//   - *Dataset: The decoded log
//   - error: A decompression error, or a *errs.DecodeError from the header or a
//     row. No partial Dataset is returned.
func (d *Decoder) Decode() (*Dataset, error) {
	payload, err := d.decompress()
	if err != nil {
		return nil, err
	}

	cur := encoding.NewCursor(payload)

	header, err := section.ReadHeader(cur, d.cfg.registry)
	if err != nil {
		return nil, err
	}

	rd := newRowDecoder(header.Descriptors, d.cfg)
	if rd.FieldCount() == 0 && cur.HasDataLeft() {
		return nil, errs.AtOffsetf(errs.ErrEmptySchema, cur.Offset(), "%d bytes follow a header without variables",
			cur.Remaining())
	}

	columns := make([]Column, rd.FieldCount())
	if size := rd.RowSize(); size > 0 {
		estimate := cur.Remaining() / size
		for i := range columns {
			columns[i] = make(Column, 0, estimate)
		}
	}

	row, cleanup := pool.GetFloat64Slice(rd.FieldCount())
	defer cleanup()

	for cur.HasDataLeft() {
		if err := rd.ReadRowInto(cur, row); err != nil {
			return nil, err
		}
		for i, v := range row {
			columns[i] = append(columns[i], v)
		}
	}

	return newDataset(header, columns)
}

func (d *Decoder) decompress() ([]byte, error) {
	codec, err := compress.CreateCodec(d.cfg.compression, "log")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(d.data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s log: %w", d.cfg.compression, err)
	}

	return payload, nil
}
