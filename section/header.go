package section

import (
	"bytes"
	"math"

	"github.com/arloliu/trklog/encoding"
	"github.com/arloliu/trklog/endian"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
)

// FormatTag is the opaque 10-byte marker at the start of a .trk file.
//
// The tag is stored verbatim and not interpreted by the decoder.
type FormatTag [FormatTagSize]byte

// NewFormatTag builds a tag from s, truncating it or padding it with NUL bytes.
func NewFormatTag(s string) FormatTag {
	var tag FormatTag
	copy(tag[:], s)

	return tag
}

// String returns the tag text up to the first NUL byte.
func (t FormatTag) String() string {
	b := t[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}

// Header is the parsed header region of a .trk file.
type Header struct {
	FormatTag   FormatTag
	Descriptors []VariableDescriptor
}

// ParamCount returns the number of variables declared by the header.
func (h Header) ParamCount() int {
	return len(h.Descriptors)
}

// RowSize returns the byte size of one row.
func (h Header) RowSize() int {
	size := 0
	for _, d := range h.Descriptors {
		size += d.FieldWidth()
	}

	return size
}

// EncodedSize returns the byte size of the header region.
func (h Header) EncodedSize() int {
	size := FormatTagSize + ParamCountSize
	for _, d := range h.Descriptors {
		size += d.EncodedSize()
	}

	return size
}

// Bytes serializes the header region.
func (h Header) Bytes() ([]byte, error) {
	return h.AppendTo(make([]byte, 0, h.EncodedSize()))
}

// AppendTo appends the serialized header region to dst.
func (h Header) AppendTo(dst []byte) ([]byte, error) {
	if uint64(len(h.Descriptors)) > math.MaxUint32 {
		return dst, errs.ErrInvalidVariable
	}

	dst = append(dst, h.FormatTag[:]...)
	dst = endian.GetLittleEndianEngine().AppendUint32(dst, uint32(len(h.Descriptors))) //nolint:gosec

	var err error
	for _, d := range h.Descriptors {
		if dst, err = d.AppendTo(dst); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// ReadHeader reads the header region at the cursor position.
//
// On success the cursor is positioned at the first byte of the row region.
// Type identifiers are resolved through reg; a nil reg selects format.DefaultRegistry.
//
// Returns a *errs.DecodeError wrapping:
//   - errs.ErrTruncatedHeader if the input ends before all descriptors are read
//   - errs.ErrUnknownType if a type identifier is not in reg
//   - errs.ErrInvalidText if a name or unit is not valid text, or a name is empty
func ReadHeader(cur *encoding.Cursor, reg *format.Registry) (Header, error) {
	if reg == nil {
		reg = format.DefaultRegistry()
	}

	var h Header

	tag, ok := cur.Next(FormatTagSize)
	if !ok {
		return h, errs.AtOffsetf(errs.ErrTruncatedHeader, cur.Offset(), "format tag needs %d bytes, %d left",
			FormatTagSize, cur.Remaining())
	}
	copy(h.FormatTag[:], tag)

	countOffset := cur.Offset()
	count, ok := cur.Uint32()
	if !ok {
		return h, errs.AtOffset(errs.ErrTruncatedHeader, countOffset, "parameter count")
	}

	// The count comes from the file; bound the allocation by what the input can hold.
	capacity := min(uint64(count), uint64(cur.Remaining()/MinDescriptorSize))
	h.Descriptors = make([]VariableDescriptor, 0, capacity)

	for i := uint32(0); i < count; i++ {
		desc, err := readDescriptor(cur, reg, i)
		if err != nil {
			return Header{}, err
		}
		h.Descriptors = append(h.Descriptors, desc)
	}

	return h, nil
}

// ParseHeader parses the header region at the start of data.
//
// Returns the header and the number of bytes it occupies, i.e. the offset of the
// first row.
func ParseHeader(data []byte, reg *format.Registry) (Header, int, error) {
	cur := encoding.NewCursor(data)

	h, err := ReadHeader(cur, reg)
	if err != nil {
		return Header{}, 0, err
	}

	return h, int(cur.Offset()), nil
}
