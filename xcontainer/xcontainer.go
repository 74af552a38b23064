// Package xcontainer supplies the container codecs spec.md describes
// only in terms of primitives: slices, maps, options and small fixed
// tuples, all built on top of WriteSize/ReadSize (honoring size_flatten)
// so a container's length prefix is elided exactly when a primitive
// value's would be.
//
// Generalizes the teacher's utils/cser hand-written per-type slice
// helpers (SliceBytes, FixedBytes) into generic, element-type-agnostic
// combinators, the way Go generics let a single EncodeSliceWith[T] stand in
// for what the teacher had to duplicate once per concrete slice type.
package xcontainer

import (
	"math/big"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/ferr"
)

// EncodeSliceWith writes len(vs) (honoring size_flatten) then each
// element via encode.
func EncodeSliceWith[T any](enc *flexcodec.Encoder, vs []T, encode func(*flexcodec.Encoder, T) error) error {
	if err := enc.WriteSize(uint64(len(vs))); err != nil {
		return err
	}
	for i := range vs {
		if err := encode(enc, vs[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSliceWith reads a size-prefixed run of elements via decode.
func DecodeSliceWith[T any](enc *flexcodec.Encoder, decode func(*flexcodec.Encoder) (T, error)) ([]T, error) {
	n, err := enc.ReadSize()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(enc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeMapWith writes len(m) then each key/value pair via encodeKey/
// encodeVal. Map iteration order is Go's randomized order; callers
// needing deterministic wire output must sort keys themselves before
// calling EncodeSliceWith on pairs instead.
func EncodeMapWith[K comparable, V any](enc *flexcodec.Encoder, m map[K]V, encodeKey func(*flexcodec.Encoder, K) error, encodeVal func(*flexcodec.Encoder, V) error) error {
	if err := enc.WriteSize(uint64(len(m))); err != nil {
		return err
	}
	for k, v := range m {
		if err := encodeKey(enc, k); err != nil {
			return err
		}
		if err := encodeVal(enc, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMapWith reads a size-prefixed run of key/value pairs.
func DecodeMapWith[K comparable, V any](enc *flexcodec.Encoder, decodeKey func(*flexcodec.Encoder) (K, error), decodeVal func(*flexcodec.Encoder) (V, error)) (map[K]V, error) {
	n, err := enc.ReadSize()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := uint64(0); i < n; i++ {
		k, err := decodeKey(enc)
		if err != nil {
			return nil, err
		}
		v, err := decodeVal(enc)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// EncodeOption writes a presence bool (honoring bool_flatten) followed
// by the payload when present.
func EncodeOption[T any](enc *flexcodec.Encoder, v *T, encode func(*flexcodec.Encoder, T) error) error {
	if err := enc.WriteBool(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return encode(enc, *v)
}

// DecodeOption reads a presence bool followed by the payload when
// present, returning nil otherwise.
func DecodeOption[T any](enc *flexcodec.Encoder, decode func(*flexcodec.Encoder) (T, error)) (*T, error) {
	present, err := enc.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := decode(enc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Tuple2/Tuple3 encode/decode a fixed-arity heterogeneous tuple as the
// concatenation of its elements' encodings, with no length prefix —
// arity is fixed at compile time, so there is nothing to measure.

func EncodeTuple2[A, B any](enc *flexcodec.Encoder, a A, b B, encA func(*flexcodec.Encoder, A) error, encB func(*flexcodec.Encoder, B) error) error {
	if err := encA(enc, a); err != nil {
		return err
	}
	return encB(enc, b)
}

func DecodeTuple2[A, B any](enc *flexcodec.Encoder, decA func(*flexcodec.Encoder) (A, error), decB func(*flexcodec.Encoder) (B, error)) (A, B, error) {
	var zeroA A
	var zeroB B
	a, err := decA(enc)
	if err != nil {
		return zeroA, zeroB, err
	}
	b, err := decB(enc)
	if err != nil {
		return zeroA, zeroB, err
	}
	return a, b, nil
}

func EncodeTuple3[A, B, C any](enc *flexcodec.Encoder, a A, b B, c C, encA func(*flexcodec.Encoder, A) error, encB func(*flexcodec.Encoder, B) error, encC func(*flexcodec.Encoder, C) error) error {
	if err := encA(enc, a); err != nil {
		return err
	}
	if err := encB(enc, b); err != nil {
		return err
	}
	return encC(enc, c)
}

func DecodeTuple3[A, B, C any](enc *flexcodec.Encoder, decA func(*flexcodec.Encoder) (A, error), decB func(*flexcodec.Encoder) (B, error), decC func(*flexcodec.Encoder) (C, error)) (A, B, C, error) {
	var zeroA A
	var zeroB B
	var zeroC C
	a, err := decA(enc)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	b, err := decB(enc)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	c, err := decC(enc)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	return a, b, c, nil
}

// BigIntFixed writes a big.Int's two's-complement magnitude into a fixed
// byteLen-byte field, matching the teacher's utils/cser.PaddedBytes
// left-padding idiom. It returns an error rather than panicking on
// overflow, unlike the teacher (spec.md requires value-returned errors
// throughout, not panics).
func BigIntFixed(enc *flexcodec.Encoder, v *big.Int, byteLen int) error {
	if v.Sign() < 0 {
		return ferr.Validation("BigIntFixed: negative values are not supported")
	}
	raw := v.Bytes()
	if len(raw) > byteLen {
		return ferr.Validation("BigIntFixed: value does not fit in the fixed field width")
	}
	padded := make([]byte, byteLen)
	copy(padded[byteLen-len(raw):], raw)
	return enc.WriteBytes(padded)
}

// ReadBigIntFixed reads a fixed byteLen-byte big-endian magnitude.
func ReadBigIntFixed(enc *flexcodec.Encoder, byteLen int) (*big.Int, error) {
	buf, err := enc.ReadBytes(byteLen)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

// BigIntVarBytes writes a big.Int as a size-prefixed (honoring
// size_flatten) big-endian magnitude, the zero-length encoding for a
// zero value — directly grounded on the teacher's
// utils/cser.Writer.BigInt, which also collapses a zero value to an
// empty SliceBytes run.
func BigIntVarBytes(enc *flexcodec.Encoder, v *big.Int) error {
	if v.Sign() < 0 {
		return ferr.Validation("BigIntVarBytes: negative values are not supported")
	}
	var raw []byte
	if v.Sign() != 0 {
		raw = v.Bytes()
	}
	if err := enc.WriteSize(uint64(len(raw))); err != nil {
		return err
	}
	return enc.WriteBytes(raw)
}

// ReadBigIntVarBytes reads a size-prefixed big-endian magnitude, per
// the teacher's utils/cser.Reader.BigInt (there capped at a fixed 512
// bytes; here bounded instead by the active SizeRepr.MaxSize, so the
// limit is a setting rather than a hardcoded constant).
func ReadBigIntVarBytes(enc *flexcodec.Encoder) (*big.Int, error) {
	n, err := enc.ReadSize()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return new(big.Int), nil
	}
	buf, err := enc.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}
