package xcontainer_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/stream"
	"github.com/rony4d/flexcodec/xcontainer"
)

func newPair() (*flexcodec.Encoder, func() *flexcodec.Encoder) {
	ctx := flexcodec.WithSettings(flexcodec.DefaultBinSettings())
	w := stream.NewSliceWriter(nil)
	enc := flexcodec.NewEncoderWriter(w, ctx)
	return enc, func() *flexcodec.Encoder {
		return flexcodec.NewEncoderReader(stream.NewSliceReader(w.Bytes()), ctx)
	}
}

func u32Codec() (func(*flexcodec.Encoder, uint32) error, func(*flexcodec.Encoder) (uint32, error)) {
	return func(e *flexcodec.Encoder, v uint32) error { return e.WriteU32(v) },
		func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() }
}

func TestSliceRoundTrip(t *testing.T) {
	encElem, decElem := u32Codec()
	enc, toReader := newPair()

	want := []uint32{1, 2, 3, 4, 5}
	require.NoError(t, xcontainer.EncodeSliceWith(enc, want, encElem))

	got, err := xcontainer.DecodeSliceWith(toReader(), decElem)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEmptySliceRoundTrip(t *testing.T) {
	encElem, decElem := u32Codec()
	enc, toReader := newPair()

	require.NoError(t, xcontainer.EncodeSliceWith(enc, []uint32(nil), encElem))
	got, err := xcontainer.DecodeSliceWith(toReader(), decElem)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMapRoundTrip(t *testing.T) {
	encElem, decElem := u32Codec()
	enc, toReader := newPair()

	want := map[uint32]uint32{1: 10, 2: 20, 3: 30}
	err := xcontainer.EncodeMapWith(enc, want, encElem, encElem)
	require.NoError(t, err)

	got, err := xcontainer.DecodeMapWith(toReader(), decElem, decElem)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestOptionRoundTrip_Present(t *testing.T) {
	enc, toReader := newPair()
	v := uint32(99)
	err := xcontainer.EncodeOption(enc, &v, func(e *flexcodec.Encoder, x uint32) error { return e.WriteU32(x) })
	require.NoError(t, err)

	got, err := xcontainer.DecodeOption(toReader(), func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() })
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uint32(99), *got)
}

func TestOptionRoundTrip_Absent(t *testing.T) {
	enc, toReader := newPair()
	err := xcontainer.EncodeOption[uint32](enc, nil, func(e *flexcodec.Encoder, x uint32) error { return e.WriteU32(x) })
	require.NoError(t, err)

	got, err := xcontainer.DecodeOption(toReader(), func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() })
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTuple2RoundTrip(t *testing.T) {
	enc, toReader := newPair()
	err := xcontainer.EncodeTuple2(enc, uint32(7), true,
		func(e *flexcodec.Encoder, v uint32) error { return e.WriteU32(v) },
		func(e *flexcodec.Encoder, v bool) error { return e.WriteBool(v) },
	)
	require.NoError(t, err)

	a, b, err := xcontainer.DecodeTuple2(toReader(),
		func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() },
		func(e *flexcodec.Encoder) (bool, error) { return e.ReadBool() },
	)
	require.NoError(t, err)
	require.Equal(t, uint32(7), a)
	require.True(t, b)
}

func TestTuple3RoundTrip(t *testing.T) {
	enc, toReader := newPair()
	err := xcontainer.EncodeTuple3(enc, uint32(1), uint32(2), uint32(3),
		func(e *flexcodec.Encoder, v uint32) error { return e.WriteU32(v) },
		func(e *flexcodec.Encoder, v uint32) error { return e.WriteU32(v) },
		func(e *flexcodec.Encoder, v uint32) error { return e.WriteU32(v) },
	)
	require.NoError(t, err)

	a, b, c, err := xcontainer.DecodeTuple3(toReader(),
		func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() },
		func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() },
		func(e *flexcodec.Encoder) (uint32, error) { return e.ReadU32() },
	)
	require.NoError(t, err)
	require.Equal(t, uint32(1), a)
	require.Equal(t, uint32(2), b)
	require.Equal(t, uint32(3), c)
}

func TestBigIntFixedRoundTrip(t *testing.T) {
	enc, toReader := newPair()
	v := big.NewInt(0xFFFFF)
	require.NoError(t, xcontainer.BigIntFixed(enc, v, 8))

	got, err := xcontainer.ReadBigIntFixed(toReader(), 8)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(got))
}

func TestBigIntFixedRejectsOverflow(t *testing.T) {
	enc, _ := newPair()
	v := new(big.Int).Lsh(big.NewInt(1), 100)
	require.Error(t, xcontainer.BigIntFixed(enc, v, 8))
}

func TestBigIntVarBytesRoundTrip_IncludingZero(t *testing.T) {
	for _, v := range []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(0xFFFFF)} {
		enc, toReader := newPair()
		require.NoError(t, xcontainer.BigIntVarBytes(enc, v))

		got, err := xcontainer.ReadBigIntVarBytes(toReader())
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(got))
	}
}

func TestBigIntVarBytesRejectsNegative(t *testing.T) {
	enc, _ := newPair()
	require.Error(t, xcontainer.BigIntVarBytes(enc, big.NewInt(-5)))
}
