package modifier

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate is a Compressor backed by klauspost/compress/flate, grounded in
// both SnellerInc-sneller's and quay-claircore's klauspost/compress
// dependency.
type Deflate struct {
	// Level is passed to flate.NewWriter; 0 selects the package default.
	Level int
}

func (d Deflate) level() int {
	if d.Level == 0 {
		return flate.DefaultCompression
	}
	return d.Level
}

func (d Deflate) NewWriter(dst io.Writer) (WriteFinisher, error) {
	w, err := flate.NewWriter(dst, d.level())
	if err != nil {
		return nil, err
	}
	return deflateWriteFinisher{w}, nil
}

func (d Deflate) NewReader(src io.Reader) (ReadFinisher, error) {
	return deflateReadFinisher{flate.NewReader(src)}, nil
}

type deflateWriteFinisher struct{ w *flate.Writer }

func (d deflateWriteFinisher) Write(p []byte) (int, error) { return d.w.Write(p) }
func (d deflateWriteFinisher) Finish() error                { return d.w.Close() }

type deflateReadFinisher struct{ r io.ReadCloser }

func (d deflateReadFinisher) Read(p []byte) (int, error) { return d.r.Read(p) }
func (d deflateReadFinisher) Finish() error               { return d.r.Close() }
