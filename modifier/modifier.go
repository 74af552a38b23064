// Package modifier implements spec §4.E's stream-modifier stack: scoped
// layering of compression and encryption transforms around an encode or
// decode sub-operation, with a guaranteed finish on every exit path.
//
// The scoped-setup/run-body/always-finalize shape is carried over from
// the teacher package's utils/cser.MarshalBinaryAdapter /
// UnmarshalBinaryAdapter, which build a temporary Writer/Reader pair,
// run a caller-supplied closure, and then always pack/split the result —
// generalized here from one fixed split-stream transform to an arbitrary
// pluggable Compressor/Cipher.
package modifier

import (
	"fmt"
	"io"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/ferr"
	"github.com/rony4d/flexcodec/metrics"
	"github.com/rony4d/flexcodec/stream"
)

// WriteFinisher is a transform's write side: Write behaves like
// io.Writer, and Finish flushes any buffered data and emits the
// transform's terminator/padding (spec: "finish: flush any buffered data
// and emit the transform's terminator/padding").
type WriteFinisher interface {
	io.Writer
	Finish() error
}

// ReadFinisher is a transform's read side: Read behaves like io.Reader,
// and Finish consumes or verifies any trailing padding.
type ReadFinisher interface {
	io.Reader
	Finish() error
}

// Compressor and Cipher share the exact same shape (spec §4.E: "Two
// families, identical shape"); they are kept as distinct named types so
// EncodeWithCompression and EncodeWithEncryption can't be accidentally
// swapped at a call site, and so Context.DefaultCompressor/DefaultCipher
// type-assert unambiguously.
type Compressor interface {
	NewWriter(dst io.Writer) (WriteFinisher, error)
	NewReader(src io.Reader) (ReadFinisher, error)
}

type Cipher interface {
	NewWriter(dst io.Writer) (WriteFinisher, error)
	NewReader(src io.Reader) (ReadFinisher, error)
}

// EncodeWithCompression pushes a compression layer around body. If c is
// nil, the context's DefaultCompressor is consulted; if that is also
// unset, the layer is a no-op pass-through (spec §4.E).
func EncodeWithCompression(enc *flexcodec.Encoder, c Compressor, body func(*flexcodec.Encoder) error) error {
	if c == nil {
		c, _ = enc.Ctx.DefaultCompressor.(Compressor)
	}
	if c == nil {
		return body(enc)
	}
	wf, err := c.NewWriter(stream.AsIOWriter{W: enc.W})
	if err != nil {
		return ferr.IOError(err)
	}
	return runWrite(enc, fmt.Sprintf("%T", c), wf, body)
}

// DecodeWithCompression mirrors EncodeWithCompression on the read side.
func DecodeWithCompression(enc *flexcodec.Encoder, c Compressor, body func(*flexcodec.Encoder) error) error {
	if c == nil {
		c, _ = enc.Ctx.DefaultCompressor.(Compressor)
	}
	if c == nil {
		return body(enc)
	}
	rf, err := c.NewReader(stream.AsIOReader{R: enc.R})
	if err != nil {
		return ferr.IOError(err)
	}
	return runRead(enc, fmt.Sprintf("%T", c), rf, body)
}

// EncodeWithEncryption pushes an encryption layer around body.
func EncodeWithEncryption(enc *flexcodec.Encoder, c Cipher, body func(*flexcodec.Encoder) error) error {
	if c == nil {
		c, _ = enc.Ctx.DefaultCipher.(Cipher)
	}
	if c == nil {
		return body(enc)
	}
	wf, err := c.NewWriter(stream.AsIOWriter{W: enc.W})
	if err != nil {
		return ferr.IOError(err)
	}
	return runWrite(enc, fmt.Sprintf("%T", c), wf, body)
}

// DecodeWithEncryption mirrors EncodeWithEncryption on the read side.
func DecodeWithEncryption(enc *flexcodec.Encoder, c Cipher, body func(*flexcodec.Encoder) error) error {
	if c == nil {
		c, _ = enc.Ctx.DefaultCipher.(Cipher)
	}
	if c == nil {
		return body(enc)
	}
	rf, err := c.NewReader(stream.AsIOReader{R: enc.R})
	if err != nil {
		return ferr.IOError(err)
	}
	return runRead(enc, fmt.Sprintf("%T", c), rf, body)
}

// runWrite implements spec §4.E's five-step algorithm: build the wrapper,
// hand a new Encoder sharing the same Context to body, then unconditionally
// finish — a finish error replaces a prior success but never replaces a
// prior failure.
func runWrite(enc *flexcodec.Encoder, layer string, wf WriteFinisher, body func(*flexcodec.Encoder) error) (err error) {
	log := enc.Ctx.Logger()
	log.Tracef("modifier push: layer=%s direction=write", layer)
	defer func() {
		metrics.ObserveModifierFinish(layer, "write", err)
		log.Tracef("modifier finish: layer=%s direction=write success=%v", layer, err == nil)
	}()

	inner := flexcodec.NewEncoderWriter(stream.WriteTo{Dst: wf}, enc.Ctx)
	bodyErr := body(inner)
	finishErr := wf.Finish()
	if bodyErr != nil {
		err = bodyErr
		return err
	}
	if finishErr != nil {
		err = ferr.IOError(finishErr)
		return err
	}
	return nil
}

func runRead(enc *flexcodec.Encoder, layer string, rf ReadFinisher, body func(*flexcodec.Encoder) error) (err error) {
	log := enc.Ctx.Logger()
	log.Tracef("modifier push: layer=%s direction=read", layer)
	defer func() {
		metrics.ObserveModifierFinish(layer, "read", err)
		log.Tracef("modifier finish: layer=%s direction=read success=%v", layer, err == nil)
	}()

	inner := flexcodec.NewEncoderReader(stream.ReadFrom{Src: rf}, enc.Ctx)
	bodyErr := body(inner)
	finishErr := rf.Finish()
	if bodyErr != nil {
		err = bodyErr
		return err
	}
	if finishErr != nil {
		err = ferr.IOError(finishErr)
		return err
	}
	return nil
}
