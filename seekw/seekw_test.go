package seekw_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/seekw"
	"github.com/rony4d/flexcodec/stream"
)

var errBodyFailed = errors.New("body failed")

func TestWith_JumpsAndRestores(t *testing.T) {
	s := flexcodec.DefaultBinSettings()
	s.NumRepr.Endianness = flexcodec.BigEndian
	ctx := flexcodec.WithSettings(s)

	buf := []byte{0xAA, 0xBB, 0x00, 0x01, 0x02, 0x03, 0xCC, 0xDD}
	r := stream.NewSliceReader(buf)
	enc := flexcodec.NewEncoderReader(r, ctx)

	// consume the first two header bytes before peeking ahead at an
	// embedded length field.
	_, err := enc.ReadU16()
	require.NoError(t, err)
	require.Equal(t, 2, r.Position())

	got, err := seekw.With(enc, stream.Start(2), func(e *flexcodec.Encoder) (uint32, error) {
		return e.ReadU32()
	})
	require.NoError(t, err)
	require.Equal(t, uint32(0x00010203), got)

	// With restores by the delta from prev→target, landing back at the
	// original position plus whatever the body itself consumed (4 bytes).
	require.Equal(t, 6, r.Position())

	tail, err := enc.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xCCDD), tail)
}

func TestWithVoid_PropagatesBodyError(t *testing.T) {
	ctx := flexcodec.WithSettings(flexcodec.DefaultBinSettings())
	buf := []byte{1, 2, 3, 4}
	r := stream.NewSliceReader(buf)
	enc := flexcodec.NewEncoderReader(r, ctx)

	err := seekw.WithVoid(enc, stream.Start(0), func(e *flexcodec.Encoder) error {
		_, err := e.ReadU32()
		require.NoError(t, err)
		return errBodyFailed
	})
	require.ErrorIs(t, err, errBodyFailed)
}

func TestWith_FailsWithoutSeekCapableStream(t *testing.T) {
	ctx := flexcodec.WithSettings(flexcodec.DefaultBinSettings())
	enc := flexcodec.NewEncoderReader(notASeeker{}, ctx)

	_, err := seekw.With(enc, stream.Start(0), func(e *flexcodec.Encoder) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
}

type notASeeker struct{}

func (notASeeker) Read(p []byte) error { return nil }
