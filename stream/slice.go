package stream

import "github.com/rony4d/flexcodec/ferr"

// SliceReader is a Reader (and BorrowReader) over a contiguous in-memory
// byte region. It is the direct generalization of the teacher's
// utils/fast.Reader, which also tracked a cursor over a []byte — the
// difference is that every read here is bounds-checked and returns
// ferr.KindUnexpectedEnd on a short buffer instead of panicking.
type SliceReader struct {
	buf []byte
	pos int
}

func NewSliceReader(buf []byte) *SliceReader {
	return &SliceReader{buf: buf}
}

func (r *SliceReader) Read(p []byte) error {
	if len(r.buf)-r.pos < len(p) {
		return ferr.UnexpectedEnd()
	}
	copy(p, r.buf[r.pos:r.pos+len(p)])
	r.pos += len(p)
	return nil
}

func (r *SliceReader) Peek(n int) ([]byte, error) {
	if len(r.buf)-r.pos < n {
		return nil, ferr.UnexpectedEnd()
	}
	return r.buf[r.pos : r.pos+n], nil
}

func (r *SliceReader) BorrowRead(n int) ([]byte, error) {
	out, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return out, nil
}

func (r *SliceReader) Position() int { return r.pos }
func (r *SliceReader) Len() int      { return len(r.buf) }

// Seek implements Seeker directly, since a slice supports absolute
// addressing trivially (unlike seekw's target streams).
func (r *SliceReader) Seek(target SeekFrom) (int64, error) {
	var newPos int
	switch target.Whence {
	case 0: // io.SeekStart
		newPos = int(target.Offset)
	case 1: // io.SeekCurrent
		newPos = r.pos + int(target.Offset)
	case 2: // io.SeekEnd
		newPos = len(r.buf) + int(target.Offset)
	case WhencePosition:
		return int64(r.pos), nil
	default:
		return 0, ferr.Borrow(ferr.BorrowUnsupported, "unknown SeekFrom whence")
	}
	if newPos < 0 || newPos > len(r.buf) {
		return 0, ferr.New(ferr.KindUnexpectedEnd, "seek out of bounds")
	}
	r.pos = newPos
	return int64(r.pos), nil
}

// SliceWriter is a Writer over a growable byte slice, mirroring the
// teacher's utils/fast.Writer (append-only accumulator).
type SliceWriter struct {
	buf []byte
}

func NewSliceWriter(initial []byte) *SliceWriter {
	return &SliceWriter{buf: initial}
}

func (w *SliceWriter) Write(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

func (w *SliceWriter) Bytes() []byte { return w.buf }
func (w *SliceWriter) Len() int      { return len(w.buf) }

func (w *SliceWriter) Seek(target SeekFrom) (int64, error) {
	switch target.Whence {
	case WhencePosition:
		return int64(len(w.buf)), nil
	default:
		return 0, ferr.Borrow(ferr.BorrowUnsupported, "SliceWriter only supports position queries")
	}
}
