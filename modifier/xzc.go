package modifier

import (
	"io"

	"github.com/ulikunitz/xz"
)

// Xz is a Compressor backed by github.com/ulikunitz/xz, grounded in
// quay-claircore's dependency on it for its layer-scanning pipeline. It
// offers a higher compression ratio than Deflate/Gzip at the cost of
// speed — a reasonable alternative for cold archival encodings.
type Xz struct{}

func (Xz) NewWriter(dst io.Writer) (WriteFinisher, error) {
	w, err := xz.NewWriter(dst)
	if err != nil {
		return nil, err
	}
	return xzWriteFinisher{w}, nil
}

func (Xz) NewReader(src io.Reader) (ReadFinisher, error) {
	r, err := xz.NewReader(src)
	if err != nil {
		return nil, err
	}
	return xzReadFinisher{r}, nil
}

type xzWriteFinisher struct{ w *xz.Writer }

func (x xzWriteFinisher) Write(p []byte) (int, error) { return x.w.Write(p) }
func (x xzWriteFinisher) Finish() error                { return x.w.Close() }

// xz.Reader has no Close method — it has no trailing state to flush
// beyond what reading to completion already consumes — so Finish is a
// no-op that still satisfies the ReadFinisher contract.
type xzReadFinisher struct{ r *xz.Reader }

func (x xzReadFinisher) Read(p []byte) (int, error) { return x.r.Read(p) }
func (x xzReadFinisher) Finish() error               { return nil }
