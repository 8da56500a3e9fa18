package encoding

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/trklog/errs"
)

// LengthFieldSize is the size of the uint32 length prefix in front of every string.
const LengthFieldSize = 4

// CString returns the text in b up to, but excluding, the first NUL byte.
// The whole span is used when b contains no NUL.
//
// Returns errs.ErrInvalidText (wrapped) if the text is not valid UTF-8.
func CString(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidText, b)
	}

	return string(b), nil
}

// AppendString appends s as a uint32 length prefix followed by the raw bytes.
//
// No NUL terminator is written; CString accepts both forms.
func AppendString(dst []byte, s string) ([]byte, error) {
	if uint64(len(s)) > math.MaxUint32 {
		return dst, fmt.Errorf("%w: string length %d exceeds uint32", errs.ErrInvalidVariable, len(s))
	}

	dst = le.AppendUint32(dst, uint32(len(s))) //nolint:gosec
	dst = append(dst, s...)

	return dst, nil
}
