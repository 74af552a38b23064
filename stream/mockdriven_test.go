package stream_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rony4d/flexcodec/stream"
)

func TestSizeTrack_PropagatesWriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)
	wantErr := errors.New("disk full")
	w.EXPECT().Write(gomock.Any()).Return(wantErr)

	track := stream.NewSizeTrack(w)
	err := track.Write([]byte("payload"))
	require.ErrorIs(t, err, wantErr)
	require.Zero(t, track.N, "a failed write must not be counted")
}

func TestSizeTrack_CountsOnlySuccessfulWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)
	gomock.InOrder(
		w.EXPECT().Write(gomock.Any()).Return(nil),
		w.EXPECT().Write(gomock.Any()).Return(nil),
	)

	track := stream.NewSizeTrack(w)
	require.NoError(t, track.Write([]byte("abc")))
	require.NoError(t, track.Write([]byte("de")))
	require.Equal(t, uint64(5), track.N)
}

func TestSizeLimit_RejectsReadBeyondRemainingWithoutTouchingInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockReader(ctrl) // no EXPECT() set: any call fails the test

	limit := stream.NewSizeLimit(r, 2)
	err := limit.Read(make([]byte, 3))
	require.Error(t, err, "the limiter must reject before ever touching the inner reader")
}

func TestSizeLimit_PropagatesInnerReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockReader(ctrl)
	wantErr := errors.New("connection reset")
	r.EXPECT().Read(gomock.Any()).Return(wantErr)

	limit := stream.NewSizeLimit(r, 10)
	err := limit.Read(make([]byte, 4))
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, uint64(10), limit.RemainingReadable(), "remaining budget must not shrink on a failed read")
}

func TestSizeLimit_DecrementsRemainingOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockReader(ctrl)
	r.EXPECT().Read(gomock.Any()).Return(nil)

	limit := stream.NewSizeLimit(r, 10)
	require.NoError(t, limit.Read(make([]byte, 4)))
	require.Equal(t, uint64(6), limit.RemainingReadable())
}
