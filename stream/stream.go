// Package stream defines the I/O capabilities the codec kernel needs from
// a host stream, plus a handful of adapters over them.
//
// This generalizes the teacher package's utils/fast.Reader/Writer — an
// unchecked byte-slice cursor used as a concrete type throughout
// utils/cser — into the interface + adapter shape spec.md requires: every
// read here is exact-length (a short read is an error, never a panic) and
// every write is all-or-error, so generated codec bodies can compose
// arbitrary sources (files, sockets, in-memory slices, compressed/
// encrypted wrappers) behind the same four capabilities.
package stream

import (
	"io"

	"github.com/rony4d/flexcodec/ferr"
)

// Writer is the minimal write capability: write all of p or fail.
type Writer interface {
	Write(p []byte) error
}

// Reader is the minimal read capability: fill p exactly or fail.
type Reader interface {
	Read(p []byte) error
}

// BorrowReader extends Reader with zero-copy access into the source
// buffer. Only slice-backed readers can implement this; a socket or pipe
// cannot, since there is no buffer to borrow a view into.
type BorrowReader interface {
	Reader
	// Peek returns the next n bytes without advancing the cursor. The
	// returned slice aliases the source buffer; callers must not retain
	// it past the next mutating call.
	Peek(n int) ([]byte, error)
	// BorrowRead returns the next n bytes as a view into the source
	// buffer and advances the cursor past them.
	BorrowRead(n int) ([]byte, error)
}

// SeekFrom mirrors spec.md's SeekFrom: Start/End/Current offsets, or a
// request for the current absolute Position. Start and End are not
// necessarily supported by every Seeker; seekw passes its target to the
// Seeker unchanged and does not translate Start/End into Current.
type SeekFrom struct {
	Whence int // io.SeekStart, io.SeekEnd, io.SeekCurrent, or WhencePosition
	Offset int64
}

// WhencePosition is a sentinel Whence value requesting the current
// absolute position with Offset ignored.
const WhencePosition = -1

func Start(n int64) SeekFrom    { return SeekFrom{Whence: io.SeekStart, Offset: n} }
func End(n int64) SeekFrom      { return SeekFrom{Whence: io.SeekEnd, Offset: n} }
func Current(n int64) SeekFrom  { return SeekFrom{Whence: io.SeekCurrent, Offset: n} }
func Position() SeekFrom        { return SeekFrom{Whence: WhencePosition} }

// Seeker exposes stream repositioning. Implementations that cannot honor
// Start/End directly should return ferr.Borrow(ferr.BorrowUnsupported, ...)
// for those whence values; seekw.With restores position with a Current
// seek alone, after a Position query and a seek to its target.
type Seeker interface {
	Seek(target SeekFrom) (int64, error)
}

// ReadFrom adapts an io.Reader into the exact-length Reader capability:
// short reads become ferr.KindUnexpectedEnd rather than a partial fill.
type ReadFrom struct {
	Src io.Reader
}

func (r ReadFrom) Read(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := io.ReadFull(r.Src, p)
	if err != nil {
		return ferr.IOError(err)
	}
	return nil
}

// WriteTo adapts an io.Writer into the all-or-error Writer capability.
type WriteTo struct {
	Dst io.Writer
}

func (w WriteTo) Write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Dst.Write(p)
	if err != nil {
		return ferr.IOError(err)
	}
	if n != len(p) {
		return ferr.IOError(io.ErrShortWrite)
	}
	return nil
}
