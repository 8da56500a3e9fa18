package trk

import (
	"github.com/arloliu/trklog/encoding"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/section"
)

// rowField is the decoding plan of one variable.
type rowField struct {
	name        string
	tag         format.TypeTag
	width       int
	unsupported bool
}

// RowDecoder decodes single rows according to a descriptor list.
//
// Each field is read as a contiguous span directly after the previous one; its
// width is section.VariableDescriptor.FieldWidth.
type RowDecoder struct {
	fields  []rowField
	rowSize int
}

// NewRowDecoder creates a RowDecoder for rows laid out by descs.
//
// Only WithUnsupportedTypes affects row decoding; other options are accepted
// and ignored.
func NewRowDecoder(descs []section.VariableDescriptor, opts ...DecoderOption) (*RowDecoder, error) {
	cfg, err := newDecoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newRowDecoder(descs, cfg), nil
}

func newRowDecoder(descs []section.VariableDescriptor, cfg *DecoderConfig) *RowDecoder {
	rd := &RowDecoder{fields: make([]rowField, len(descs))}
	for i, d := range descs {
		f := rowField{
			name:        d.Name,
			tag:         d.Type,
			width:       d.FieldWidth(),
			unsupported: cfg.IsUnsupported(d.Type),
		}
		rd.fields[i] = f
		rd.rowSize += f.width
	}

	return rd
}

// FieldCount returns the number of values in each row.
func (rd *RowDecoder) FieldCount() int {
	return len(rd.fields)
}

// RowSize returns the byte size of one row.
func (rd *RowDecoder) RowSize() int {
	return rd.rowSize
}

// ReadRow decodes one row at the cursor position into a new slice.
func (rd *RowDecoder) ReadRow(cur *encoding.Cursor) ([]float64, error) {
	row := make([]float64, len(rd.fields))
	if err := rd.ReadRowInto(cur, row); err != nil {
		return nil, err
	}

	return row, nil
}

// ReadRowInto decodes one row at the cursor position into dst.
//
// dst must have exactly FieldCount elements. On failure the cursor position is
// unspecified and the row must be discarded.
//
// Returns a *errs.DecodeError wrapping:
//   - errs.ErrTruncatedRow if fewer bytes remain than a field requires
//   - errs.ErrUnsupportedType if a field's type cannot be decoded; the field's
//     bytes are not consumed
func (rd *RowDecoder) ReadRowInto(cur *encoding.Cursor, dst []float64) error {
	if len(dst) != len(rd.fields) {
		return errs.AtOffsetf(errs.ErrRowWidthMismatch, cur.Offset(),
			"destination holds %d values, row has %d", len(dst), len(rd.fields))
	}

	for i := range rd.fields {
		f := &rd.fields[i]
		offset := cur.Offset()

		if f.unsupported || f.width == 0 {
			return errs.AtOffsetf(errs.ErrUnsupportedType, offset, "field %d (%s): %s", i, f.name, f.tag)
		}

		b, ok := cur.Next(f.width)
		if !ok {
			return errs.AtOffsetf(errs.ErrTruncatedRow, offset, "field %d (%s) needs %d bytes, %d left",
				i, f.name, f.width, cur.Remaining())
		}

		v, err := encoding.DecodeValue(f.tag, b)
		if err != nil {
			return errs.AtOffsetf(errs.ErrUnsupportedType, offset, "field %d (%s): %v", i, f.name, err)
		}
		dst[i] = v
	}

	return nil
}
