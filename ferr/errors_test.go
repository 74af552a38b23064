package ferr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/flexcodec/ferr"
)

func TestIOError_ClassifiesEOFAsUnexpectedEnd(t *testing.T) {
	e := ferr.IOError(io.EOF)
	require.Equal(t, ferr.KindUnexpectedEnd, e.Kind)
	require.ErrorIs(t, e, io.EOF)
}

func TestIOError_OtherErrorsAreIOErrors(t *testing.T) {
	e := ferr.IOError(errors.New("disk on fire"))
	require.Equal(t, ferr.KindIOError, e.Kind)
}

func TestMaxSizeExceeded_Message(t *testing.T) {
	e := ferr.MaxSizeExceeded(10, 20)
	require.Equal(t, uint64(10), e.Max)
	require.Equal(t, uint64(20), e.Requested)
	require.Contains(t, e.Error(), "10")
	require.Contains(t, e.Error(), "20")
}

func TestIsRecoverableBorrow(t *testing.T) {
	borrowErr := ferr.Borrow(ferr.BorrowEndiannessMismatch, "nope")
	require.True(t, ferr.IsRecoverableBorrow(borrowErr))

	other := ferr.Validation("nope")
	require.False(t, ferr.IsRecoverableBorrow(other))
	require.False(t, ferr.IsRecoverableBorrow(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	wrapped := errors.New("root cause")
	e := ferr.Wrap(ferr.KindIOError, wrapped)
	require.ErrorIs(t, e, wrapped)
}

func TestIOKind(t *testing.T) {
	require.Equal(t, io.ErrUnexpectedEOF, ferr.UnexpectedEnd().IOKind())

	wrapped := errors.New("boom")
	ioErr := ferr.Wrap(ferr.KindIOError, wrapped)
	require.Equal(t, wrapped, ioErr.IOKind())

	v := ferr.Validation("x")
	require.Equal(t, v, v.IOKind())
}
