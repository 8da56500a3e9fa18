package section

import (
	"fmt"

	"github.com/arloliu/trklog/encoding"
	"github.com/arloliu/trklog/endian"
	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
)

// VariableDescriptor describes one logged variable.
//
// The order of descriptors in a header is the order of fields in every row.
type VariableDescriptor struct {
	// Name is the fully qualified variable name, e.g. "dyn.cannon.pos[0]". Never empty.
	Name string
	// Unit is the unit string, e.g. "m". May be empty.
	Unit string
	// TypeID is the Trick type identifier exactly as stored in the header.
	TypeID uint32
	// Type is TypeID resolved through the registry.
	Type format.TypeTag
	// DeclaredWidth is the byte width recorded in the header.
	//
	// It does not size row fields, except for bit-fields.
	DeclaredWidth uint32
}

// FieldWidth returns the number of bytes this variable occupies in each row.
//
// A zero width means the field cannot be sized (a bit-field declared with width 0).
func (d VariableDescriptor) FieldWidth() int {
	return d.Type.FieldWidth(d.DeclaredWidth)
}

// DeclaredWidthMatches reports whether the declared width equals the width used for row decoding.
func (d VariableDescriptor) DeclaredWidthMatches() bool {
	return int(d.DeclaredWidth) == d.FieldWidth()
}

// EncodedSize returns the size of the descriptor record in the header.
func (d VariableDescriptor) EncodedSize() int {
	return MinDescriptorSize + len(d.Name) + len(d.Unit)
}

// AppendTo appends the binary descriptor record to dst.
func (d VariableDescriptor) AppendTo(dst []byte) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	var err error
	if dst, err = encoding.AppendString(dst, d.Name); err != nil {
		return dst, err
	}
	if dst, err = encoding.AppendString(dst, d.Unit); err != nil {
		return dst, err
	}

	dst = engine.AppendUint32(dst, d.TypeID)
	dst = engine.AppendUint32(dst, d.DeclaredWidth)

	return dst, nil
}

func (d VariableDescriptor) String() string {
	return fmt.Sprintf("%s (%s) %s/%d", d.Name, d.Unit, d.Type, d.DeclaredWidth)
}

// readDescriptor reads the idx-th descriptor record at the cursor position.
func readDescriptor(cur *encoding.Cursor, reg *format.Registry, idx uint32) (VariableDescriptor, error) {
	var desc VariableDescriptor

	nameOffset := cur.Offset()
	name, err := readText(cur, idx, "name")
	if err != nil {
		return desc, err
	}
	if name == "" {
		return desc, errs.AtOffsetf(errs.ErrInvalidText, nameOffset, "descriptor %d: empty name", idx)
	}

	unit, err := readText(cur, idx, "unit")
	if err != nil {
		return desc, err
	}

	typeOffset := cur.Offset()
	typeID, ok := cur.Uint32()
	if !ok {
		return desc, errs.AtOffsetf(errs.ErrTruncatedHeader, typeOffset, "descriptor %d: type identifier", idx)
	}

	tag, ok := reg.Lookup(typeID)
	if !ok {
		return desc, errs.AtOffsetf(errs.ErrUnknownType, typeOffset, "descriptor %d (%s): type identifier %d", idx, name, typeID)
	}

	widthOffset := cur.Offset()
	width, ok := cur.Uint32()
	if !ok {
		return desc, errs.AtOffsetf(errs.ErrTruncatedHeader, widthOffset, "descriptor %d: declared width", idx)
	}

	desc.Name = name
	desc.Unit = unit
	desc.TypeID = typeID
	desc.Type = tag
	desc.DeclaredWidth = width

	return desc, nil
}

// readText reads a uint32 length followed by that many bytes of NUL-terminated text.
func readText(cur *encoding.Cursor, idx uint32, field string) (string, error) {
	lenOffset := cur.Offset()
	n, ok := cur.Uint32()
	if !ok {
		return "", errs.AtOffsetf(errs.ErrTruncatedHeader, lenOffset, "descriptor %d: %s length", idx, field)
	}

	textOffset := cur.Offset()
	if uint64(n) > uint64(cur.Remaining()) {
		return "", errs.AtOffsetf(errs.ErrTruncatedHeader, textOffset,
			"descriptor %d: %s needs %d bytes, %d left", idx, field, n, cur.Remaining())
	}

	raw, _ := cur.Next(int(n))
	text, err := encoding.CString(raw)
	if err != nil {
		return "", errs.AtOffsetf(errs.ErrInvalidText, textOffset, "descriptor %d: %s", idx, field)
	}

	return text, nil
}
