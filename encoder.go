package flexcodec

import (
	"github.com/rony4d/flexcodec/ferr"
	"github.com/rony4d/flexcodec/metrics"
	"github.com/rony4d/flexcodec/stream"
)

// Encoder wraps a stream and a Context for the duration of one encode or
// decode traversal. It owns neither: both are held by reference, so a
// stream-modifier wrapper can build a *new* Encoder over a transformed
// stream that still shares the same *Context (same flatten channels,
// same settings) as its parent — this is what makes nested compress(
// encrypt(body)) correct (spec §4.E / §9).
//
// Only one of W/R is normally set (an Encoder is either encoding or
// decoding); BorrowRead/Seek capabilities are recovered via type
// assertion against whichever of W/R is set, exactly like the teacher's
// *fast.Reader / *fast.Writer pair, generalized to interfaces.
type Encoder struct {
	W   stream.Writer
	R   stream.Reader
	Ctx *Context
}

// NewEncoderWriter builds an Encoder for an encode traversal.
func NewEncoderWriter(w stream.Writer, ctx *Context) *Encoder {
	return &Encoder{W: w, Ctx: ctx}
}

// NewEncoderReader builds an Encoder for a decode traversal.
func NewEncoderReader(r stream.Reader, ctx *Context) *Encoder {
	return &Encoder{R: r, Ctx: ctx}
}

// BorrowReader returns the underlying reader's BorrowReader capability,
// if it has one, and whether it does.
func (e *Encoder) BorrowReader() (stream.BorrowReader, bool) {
	br, ok := e.R.(stream.BorrowReader)
	return br, ok
}

// Seeker returns the underlying stream's Seeker capability, whichever of
// R/W is set, if it has one.
func (e *Encoder) Seeker() (stream.Seeker, bool) {
	if e.R != nil {
		if s, ok := e.R.(stream.Seeker); ok {
			return s, true
		}
	}
	if e.W != nil {
		if s, ok := e.W.(stream.Seeker); ok {
			return s, true
		}
	}
	return nil, false
}

// Encode is the contract generated codec bodies implement for the write
// side (spec §6 codec contracts).
type Encode interface {
	EncodeWith(enc *Encoder) error
}

// Decode is the contract generated codec bodies implement for the read
// side, returning a freshly constructed value.
type Decode[T any] interface {
	DecodeWith(enc *Encoder) (T, error)
}

// EncodeFunc/DecodeFunc let call sites pass a closure instead of defining
// a named type, which is how xcontainer's generic slice/map/option
// codecs are built over arbitrary element types.
type EncodeFunc func(enc *Encoder) error
type DecodeFunc[T any] func(enc *Encoder) (T, error)

// EncodeWith is the library's encode entry point (spec §6): construct an
// Encoder over w and ctx, run value's EncodeWith, and return any error.
// On success ctx.Settings is guaranteed unchanged.
func EncodeWith(w stream.Writer, ctx *Context, value Encode) error {
	op := metrics.StartOp("encode")
	var err error
	defer op.Finish(&err)

	enc := NewEncoderWriter(w, ctx)
	err = value.EncodeWith(enc)
	return err
}

// DecodeWith is the library's decode entry point (spec §6).
func DecodeWith[T any](r stream.Reader, ctx *Context, decode DecodeFunc[T]) (T, error) {
	op := metrics.StartOp("decode")
	var err error
	defer op.Finish(&err)

	enc := NewEncoderReader(r, ctx)
	var v T
	v, err = decode(enc)
	return v, err
}

// --- settings scoping helpers -------------------------------------------------

// WithNumRepr temporarily overrides ctx.Settings.NumRepr for the duration
// of body, then restores it — the "save → set → body → restore" idiom
// spec §2's Dataflow section describes for per-field representation
// overrides.
func (e *Encoder) WithNumRepr(r NumRepr, body func() error) error {
	prev := e.Ctx.Settings.NumRepr
	e.Ctx.Settings.NumRepr = r
	err := body()
	e.Ctx.Settings.NumRepr = prev
	return err
}

func (e *Encoder) WithSizeRepr(r SizeRepr, body func() error) error {
	prev := e.Ctx.Settings.SizeRepr
	e.Ctx.Settings.SizeRepr = r
	err := body()
	e.Ctx.Settings.SizeRepr = prev
	return err
}

func (e *Encoder) WithVariantRepr(r VariantRepr, body func() error) error {
	prev := e.Ctx.Settings.VariantRepr
	e.Ctx.Settings.VariantRepr = r
	err := body()
	e.Ctx.Settings.VariantRepr = prev
	return err
}

func (e *Encoder) WithStringRepr(r StringRepr, body func() error) error {
	prev := e.Ctx.Settings.StringRepr
	e.Ctx.Settings.StringRepr = r
	err := body()
	e.Ctx.Settings.StringRepr = prev
	return err
}

func (e *Encoder) writeErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*ferr.Error); ok {
		return err
	}
	return ferr.IOError(err)
}
