// Package errs defines the error values returned by trklog.
//
// Every failure is reported through one of the sentinel errors below, so callers
// can branch with errors.Is. Failures detected while walking a byte stream are
// wrapped in a *DecodeError, which additionally carries the absolute byte offset
// where the problem was found:
//
//	ds, err := trklog.Decode(data)
//	var decErr *errs.DecodeError
//	if errors.As(err, &decErr) && errors.Is(err, errs.ErrTruncatedRow) {
//	    fmt.Printf("log ends mid-row at byte %d\n", decErr.Offset)
//	}
package errs

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	// ErrTruncatedHeader is returned when the header region ends before all declared descriptors are read.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrUnknownType is returned when a descriptor's type identifier is not in the registry.
	ErrUnknownType = errors.New("unknown type identifier")
	// ErrTruncatedRow is returned when the input ends in the middle of a row.
	ErrTruncatedRow = errors.New("truncated row")
	// ErrUnsupportedType is returned when a row field has a recognized type that cannot be decoded.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidText is returned when a variable name or unit is not valid UTF-8 text.
	ErrInvalidText = errors.New("invalid text")
	// ErrEmptySchema is returned when row data follows a header that declares no variables.
	ErrEmptySchema = errors.New("row data without variables")
	// ErrShortBuffer is returned by primitive decoders when the byte span does not match the type width.
	ErrShortBuffer = errors.New("byte span does not match type width")
)

// Dataset query errors.
var (
	ErrVariableNotFound = errors.New("variable not found")
)

// Encoding and configuration errors.
var (
	ErrValueOutOfRange    = errors.New("value out of range for variable type")
	ErrRowWidthMismatch   = errors.New("row value count does not match variable count")
	ErrHeaderFrozen       = errors.New("variables cannot be added after the first row")
	ErrInvalidVariable    = errors.New("invalid variable definition")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrEncoderFinished    = errors.New("encoder already finished")
)

// DecodeError reports a structural failure at a byte offset of the decoded stream.
//
// Err is always one of the package sentinel errors and is returned by Unwrap.
type DecodeError struct {
	Err    error
	Offset int64
	Msg    string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}

	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Msg)
}

// Unwrap returns the sentinel error kind.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AtOffset wraps kind into a *DecodeError located at offset, with msg as detail.
func AtOffset(kind error, offset int64, msg string) error {
	return &DecodeError{Err: kind, Offset: offset, Msg: msg}
}

// AtOffsetf is like AtOffset but formats the detail with fmt.Sprintf.
func AtOffsetf(kind error, offset int64, format string, args ...any) error {
	return &DecodeError{Err: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Offset extracts the byte offset from err if it is or wraps a *DecodeError.
func Offset(err error) (int64, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr.Offset, true
	}

	return 0, false
}
