package stream

import "github.com/rony4d/flexcodec/ferr"

// ZeroSink is a Writer that discards everything. It exists so the string
// codec's "measure" phase (spec §4.D String) can run a pseudo-encode
// without allocating the real output: wrap it in SizeTrack to learn the
// byte length an encode would produce.
type ZeroSink struct{}

func (ZeroSink) Write(p []byte) error { return nil }

// SizeTrack wraps a Writer and counts bytes written through it, without
// altering what's written or where.
type SizeTrack struct {
	Inner Writer
	N     uint64
}

func NewSizeTrack(inner Writer) *SizeTrack {
	return &SizeTrack{Inner: inner}
}

func (s *SizeTrack) Write(p []byte) error {
	if err := s.Inner.Write(p); err != nil {
		return err
	}
	s.N += uint64(len(p))
	return nil
}

// SizeLimit wraps a Reader and bounds the total number of bytes readable
// through it. Used by the string and C-string decode paths to confine
// char decoding to the declared length.
type SizeLimit struct {
	Inner     Reader
	Remaining uint64
}

func NewSizeLimit(inner Reader, limit uint64) *SizeLimit {
	return &SizeLimit{Inner: inner, Remaining: limit}
}

func (s *SizeLimit) Read(p []byte) error {
	if uint64(len(p)) > s.Remaining {
		return ferr.UnexpectedEnd()
	}
	if err := s.Inner.Read(p); err != nil {
		return err
	}
	s.Remaining -= uint64(len(p))
	return nil
}

func (s *SizeLimit) RemainingReadable() uint64 { return s.Remaining }

// BorrowSizeLimit layers SizeLimit over a BorrowReader, preserving the
// Peek/BorrowRead capability while bounded. The string codec's decode
// path uses the plain SizeLimit, not this type.
type BorrowSizeLimit struct {
	SizeLimit
	inner BorrowReader
}

func NewBorrowSizeLimit(inner BorrowReader, limit uint64) *BorrowSizeLimit {
	return &BorrowSizeLimit{SizeLimit: SizeLimit{Inner: inner, Remaining: limit}, inner: inner}
}

func (s *BorrowSizeLimit) Peek(n int) ([]byte, error) {
	if uint64(n) > s.Remaining {
		return nil, ferr.UnexpectedEnd()
	}
	return s.inner.Peek(n)
}

func (s *BorrowSizeLimit) BorrowRead(n int) ([]byte, error) {
	if uint64(n) > s.Remaining {
		return nil, ferr.UnexpectedEnd()
	}
	out, err := s.inner.BorrowRead(n)
	if err != nil {
		return nil, err
	}
	s.Remaining -= uint64(n)
	return out, nil
}
