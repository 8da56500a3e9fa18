package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtOffset(t *testing.T) {
	err := AtOffsetf(ErrTruncatedRow, 42, "field %d (%s) needs %d bytes", 2, "dyn.cannon.pos[1]", 8)

	require.ErrorIs(t, err, ErrTruncatedRow)
	require.NotErrorIs(t, err, ErrTruncatedHeader)
	require.EqualError(t, err, "truncated row at offset 42: field 2 (dyn.cannon.pos[1]) needs 8 bytes")

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	require.Equal(t, int64(42), decErr.Offset)
	require.Equal(t, ErrTruncatedRow, decErr.Unwrap())
}

func TestAtOffset_Message(t *testing.T) {
	// The plain form never interprets its message
	err := AtOffset(ErrTruncatedHeader, 10, "100% read")
	require.EqualError(t, err, "truncated header at offset 10: 100% read")

	err = AtOffset(ErrUnknownType, 0, "")
	require.EqualError(t, err, "unknown type identifier at offset 0")

	err = AtOffsetf(ErrEmptySchema, 14, "%d bytes follow", 2)
	require.EqualError(t, err, "row data without variables at offset 14: 2 bytes follow")
}

func TestOffset(t *testing.T) {
	err := AtOffset(ErrUnsupportedType, 7, "bit-field")
	wrapped := fmt.Errorf("RUN_test/log_cannon.trk: %w", err)

	off, ok := Offset(wrapped)
	require.True(t, ok)
	require.Equal(t, int64(7), off)
	require.ErrorIs(t, wrapped, ErrUnsupportedType)

	_, ok = Offset(ErrTruncatedRow)
	require.False(t, ok)

	_, ok = Offset(nil)
	require.False(t, ok)
}
