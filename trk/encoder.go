package trk

import (
	"fmt"

	"github.com/arloliu/trklog/compress"
	"github.com/arloliu/trklog/encoding"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/internal/pool"
	"github.com/arloliu/trklog/section"
)

// Encoder writes .trk data.
//
// Variables must all be added before the first row. Note: The Encoder is NOT
// thread-safe and cannot be reused after Finish.
type Encoder struct {
	cfg      *EncoderConfig
	header   section.Header
	fields   []rowField
	rowSize  int
	rows     *pool.ByteBuffer
	rowCount int
	finished bool
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (WithEncoderRegistry, WithFormatTag, WithEncoderCompression)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Invalid option
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:    cfg,
		header: section.Header{FormatTag: cfg.formatTag},
		rows:   pool.GetRowBuffer(),
	}, nil
}

// AddVariable appends a variable whose declared width is the intrinsic width of
// its type, or format.MaxBitFieldWidth for bit-fields.
func (e *Encoder) AddVariable(name, unit string, typeID uint32) error {
	tag, ok := e.cfg.registry.Lookup(typeID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrUnknownType, typeID)
	}

	width := uint32(tag.Width()) //nolint:gosec
	if tag.IsBitField() {
		width = format.MaxBitFieldWidth
	}

	return e.AddVariableWithWidth(name, unit, typeID, width)
}

// AddVariableWithWidth appends a variable with an explicit declared width.
//
// The declared width is stored verbatim. It only sizes row fields for
// bit-fields; for other types a mismatching width produces a log whose
// descriptor disagrees with its rows, as some writers do.
//
// Returns:
//   - errs.ErrEncoderFinished after Finish
//   - errs.ErrHeaderFrozen once a row has been appended
//   - errs.ErrInvalidVariable for an empty name
//   - errs.ErrUnknownType if typeID is not in the registry
//   - errs.ErrUnsupportedType for a bit-field declared with width 0
func (e *Encoder) AddVariableWithWidth(name, unit string, typeID uint32, declaredWidth uint32) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.rowCount > 0 {
		return fmt.Errorf("%w: %q", errs.ErrHeaderFrozen, name)
	}
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidVariable)
	}

	tag, ok := e.cfg.registry.Lookup(typeID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrUnknownType, typeID)
	}

	desc := section.VariableDescriptor{
		Name:          name,
		Unit:          unit,
		TypeID:        typeID,
		Type:          tag,
		DeclaredWidth: declaredWidth,
	}
	if desc.FieldWidth() == 0 {
		return fmt.Errorf("%w: %s declared with width 0", errs.ErrUnsupportedType, tag)
	}

	e.header.Descriptors = append(e.header.Descriptors, desc)
	e.fields = append(e.fields, rowField{name: name, tag: tag, width: desc.FieldWidth()})
	e.rowSize += desc.FieldWidth()

	return nil
}

// AppendRow appends one row holding one value per variable, in variable order.
//
// Each value is narrowed to its variable's type. On error nothing is appended.
//
// Returns:
//   - errs.ErrEncoderFinished after Finish
//   - errs.ErrEmptySchema if no variable was added
//   - errs.ErrRowWidthMismatch if len(values) differs from the variable count
//   - errs.ErrValueOutOfRange if a value does not fit its type
func (e *Encoder) AppendRow(values ...float64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(e.fields) == 0 {
		return fmt.Errorf("%w: no variables added", errs.ErrEmptySchema)
	}
	if len(values) != len(e.fields) {
		return fmt.Errorf("%w: got %d values for %d variables", errs.ErrRowWidthMismatch, len(values), len(e.fields))
	}

	start := e.rows.Len()
	e.rows.Grow(e.rowSize)

	var err error
	for i, v := range values {
		f := &e.fields[i]
		e.rows.B, err = encoding.AppendValue(e.rows.B, f.tag, f.width, v)
		if err != nil {
			e.rows.B = e.rows.B[:start]
			return fmt.Errorf("row %d, variable %q: %w", e.rowCount, f.name, err)
		}
	}
	e.rowCount++

	return nil
}

// VariableCount returns the number of variables added so far.
func (e *Encoder) VariableCount() int {
	return len(e.fields)
}

// RowCount returns the number of rows appended so far.
func (e *Encoder) RowCount() int {
	return e.rowCount
}

// Finish returns the encoded log, compressed if configured.
//
// The encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutRowBuffer(e.rows)
		e.rows = nil
	}()

	out := make([]byte, 0, e.header.EncodedSize()+e.rows.Len())
	out, err := e.header.AppendTo(out)
	if err != nil {
		return nil, err
	}
	out = append(out, e.rows.Bytes()...)

	codec, err := compress.CreateCodec(e.cfg.compression, "log")
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(out)
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s log: %w", e.cfg.compression, err)
	}

	return compressed, nil
}
