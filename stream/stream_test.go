package stream_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/flexcodec/stream"
)

func TestSliceReaderWriter_RoundTrip(t *testing.T) {
	w := stream.NewSliceWriter(nil)
	require.NoError(t, w.Write([]byte("hello")))
	require.NoError(t, w.Write([]byte(" world")))
	require.Equal(t, "hello world", string(w.Bytes()))

	r := stream.NewSliceReader(w.Bytes())
	buf := make([]byte, 5)
	require.NoError(t, r.Read(buf))
	require.Equal(t, "hello", string(buf))
}

func TestSliceReader_ShortReadFails(t *testing.T) {
	r := stream.NewSliceReader([]byte{1, 2})
	buf := make([]byte, 3)
	require.Error(t, r.Read(buf))
}

func TestSliceReader_PeekDoesNotAdvance(t *testing.T) {
	r := stream.NewSliceReader([]byte{1, 2, 3})
	got, err := r.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, got)
	require.Equal(t, 0, r.Position())

	got2, err := r.BorrowRead(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, got2)
	require.Equal(t, 2, r.Position())
}

func TestSliceReader_Seek(t *testing.T) {
	r := stream.NewSliceReader([]byte{1, 2, 3, 4, 5})
	pos, err := r.Seek(stream.Start(2))
	require.NoError(t, err)
	require.Equal(t, int64(2), pos)

	pos, err = r.Seek(stream.Current(1))
	require.NoError(t, err)
	require.Equal(t, int64(3), pos)

	pos, err = r.Seek(stream.End(-1))
	require.NoError(t, err)
	require.Equal(t, int64(4), pos)

	pos, err = r.Seek(stream.Position())
	require.NoError(t, err)
	require.Equal(t, int64(4), pos)
}

func TestSliceReader_SeekOutOfBoundsFails(t *testing.T) {
	r := stream.NewSliceReader([]byte{1, 2, 3})
	_, err := r.Seek(stream.Start(10))
	require.Error(t, err)
}

func TestSizeTrack_CountsWrittenBytes(t *testing.T) {
	inner := stream.NewSliceWriter(nil)
	tracked := stream.NewSizeTrack(inner)
	require.NoError(t, tracked.Write([]byte("abc")))
	require.NoError(t, tracked.Write([]byte("de")))
	require.Equal(t, uint64(5), tracked.N)
	require.Equal(t, "abcde", string(inner.Bytes()))
}

func TestSizeLimit_BoundsReads(t *testing.T) {
	inner := stream.NewSliceReader([]byte("abcdef"))
	limited := stream.NewSizeLimit(inner, 3)
	buf := make([]byte, 2)
	require.NoError(t, limited.Read(buf))
	require.Equal(t, "ab", string(buf))
	require.Equal(t, uint64(1), limited.RemainingReadable())

	require.NoError(t, limited.Read(buf[:1]))
	require.Equal(t, uint64(0), limited.RemainingReadable())

	require.Error(t, limited.Read(buf[:1]), "reading past the limit must fail even though the underlying reader has bytes left")
}

func TestZeroSink_DiscardsOutput(t *testing.T) {
	var sink stream.ZeroSink
	require.NoError(t, sink.Write([]byte("anything")))
}

func TestAsIOReader_TranslatesShortReadToEOF(t *testing.T) {
	inner := stream.NewSliceReader([]byte("ab"))
	ior := stream.AsIOReader{R: inner}
	buf := make([]byte, 4)
	n, err := ior.Read(buf)
	require.GreaterOrEqual(t, n, 0)
	_ = err // first bytes may succeed one at a time; io.EOF only once the source is exhausted

	var out bytes.Buffer
	_, copyErr := out.ReadFrom(ior)
	require.NoError(t, copyErr)
}

func TestReadFromWriteTo_Adapters(t *testing.T) {
	var buf bytes.Buffer
	w := stream.WriteTo{Dst: &buf}
	require.NoError(t, w.Write([]byte("payload")))

	r := stream.ReadFrom{Src: bytes.NewReader(buf.Bytes())}
	out := make([]byte, len("payload"))
	require.NoError(t, r.Read(out))
	require.Equal(t, "payload", string(out))
}
