package stream

import (
	"errors"
	"io"

	"github.com/rony4d/flexcodec/ferr"
)

// AsIOWriter adapts a Writer to a conventional io.Writer, for handing the
// stream off to a third-party codec (compressor/cipher) that only speaks
// io.Writer. Since our Write is already all-or-error, this is a direct
// pass-through: every call either writes all of p or returns an error.
type AsIOWriter struct{ W Writer }

func (a AsIOWriter) Write(p []byte) (int, error) {
	if err := a.W.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// AsIOReader adapts a Reader (exact-length, no partial reads, no EOF
// concept) to a conventional io.Reader (partial reads allowed, io.EOF on
// exhaustion), for handing the stream to a third-party decompressor/
// cipher reader. It reads one byte at a time internally so it can return
// a short read the moment the underlying capability runs dry, translating
// that into io.EOF rather than propagating ferr.KindUnexpectedEnd — which
// would otherwise look like a mid-stream error to code that expects
// ordinary end-of-stream behaviour.
//
// This is deliberately simple rather than fast: the modifier stack is not
// on flexcodec's hot path (spec §2 allots it 14% of the core), and a
// byte-at-a-time bridge is the smallest correct way to reconcile an
// exact-length capability with io.Reader's partial-read contract.
type AsIOReader struct{ R Reader }

func (a AsIOReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(p) {
		if err := a.R.Read(p[n : n+1]); err != nil {
			if n > 0 {
				return n, nil
			}
			var fe *ferr.Error
			if errors.As(err, &fe) && fe.Kind == ferr.KindUnexpectedEnd {
				return 0, io.EOF
			}
			return 0, err
		}
		n++
	}
	return n, nil
}
