// Package borrow implements spec §4.F's zero-copy borrow path: validated
// slice borrowing for fixed-encoding, native-endian, native-alignment
// data, available only over a stream.BorrowReader.
//
// This generalizes the teacher's utils/fast.Reader.Read, which already
// hands back a slice view rather than a copy (buf := bytesR.Read(size)),
// by adding the validation gates spec.md requires before trusting a
// reinterpret-cast: NumEncoding, endianness, bit-width and alignment.
package borrow

import (
	"reflect"
	"unsafe"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/ferr"
	"github.com/rony4d/flexcodec/metrics"
	"github.com/sirupsen/logrus"
)

// Int is the set of plain integer types the borrow path can reinterpret
// a byte run as directly; flexcodec.Uint128/Int128 are deliberately
// excluded since their struct layout (two uint64 words) is not
// guaranteed by the Go spec to match the wire's raw 16-byte pattern on
// every platform.
type Int interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// IntSlice borrows count contiguous T values directly from the source
// buffer, validating spec §4.F steps 1-2 (Fixed num-encoding, native
// endianness) and step 5 (alignment). Step 3 (bit-width) does not apply
// to plain integers — T's own width on the wire is exactly sizeof(T), not
// a separately configurable BitWidth, unlike Size/Variant below.
func IntSlice[T Int](enc *flexcodec.Encoder, count int) ([]T, error) {
	log := enc.Ctx.Logger()
	br, ok := enc.BorrowReader()
	if !ok {
		log.Debug("borrow attempt declined: stream does not support borrow-read")
		return nil, ferr.Borrow(ferr.BorrowUnsupported, "stream does not support borrow-read")
	}
	rep := enc.Ctx.Settings.NumRepr
	if !rep.NumEncoding.IsBorrowable() {
		log.Debug("borrow attempt declined: non-borrowable num-encoding")
		return nil, ferr.Borrow(ferr.BorrowNonBorrowableNumEncoding, "borrow requires Fixed num-encoding")
	}
	if rep.Endianness != flexcodec.NativeEndianness {
		log.Debug("borrow attempt declined: endianness mismatch")
		return nil, ferr.Borrow(ferr.BorrowEndiannessMismatch, "borrow requires native endianness")
	}
	log.Tracef("borrow attempt: count=%d", count)
	return reinterpretFrom[T](br, count)
}

// SizeSlice borrows count usize-shaped length values, additionally
// requiring SizeRepr.Width to equal the native width (step 3) and every
// element to be <= MaxSize (step 6).
func SizeSlice(enc *flexcodec.Encoder, count int) ([]uint, error) {
	br, ok := enc.BorrowReader()
	if !ok {
		return nil, ferr.Borrow(ferr.BorrowUnsupported, "stream does not support borrow-read")
	}
	rep := enc.Ctx.Settings.SizeRepr
	if !rep.NumEncoding.IsBorrowable() {
		return nil, ferr.Borrow(ferr.BorrowNonBorrowableNumEncoding, "borrow requires Fixed num-encoding")
	}
	if rep.Endianness != flexcodec.NativeEndianness {
		return nil, ferr.Borrow(ferr.BorrowEndiannessMismatch, "borrow requires native endianness")
	}
	if rep.Width != flexcodec.NativeWidth {
		return nil, ferr.Borrow(ferr.BorrowBitWidthMismatch, "borrow requires native size bit-width")
	}
	out, err := reinterpretFrom[uint](br, count)
	if err != nil {
		return nil, err
	}
	for _, v := range out {
		if uint64(v) > rep.MaxSize {
			return nil, ferr.MaxSizeExceeded(rep.MaxSize, uint64(v))
		}
	}
	return out, nil
}

// VariantSlice borrows count discriminant values, requiring
// VariantRepr.Width to equal the native width.
func VariantSlice(enc *flexcodec.Encoder, count int) ([]uint, error) {
	br, ok := enc.BorrowReader()
	if !ok {
		return nil, ferr.Borrow(ferr.BorrowUnsupported, "stream does not support borrow-read")
	}
	rep := enc.Ctx.Settings.VariantRepr
	if !rep.NumEncoding.IsBorrowable() {
		return nil, ferr.Borrow(ferr.BorrowNonBorrowableNumEncoding, "borrow requires Fixed num-encoding")
	}
	if rep.Endianness != flexcodec.NativeEndianness {
		return nil, ferr.Borrow(ferr.BorrowEndiannessMismatch, "borrow requires native endianness")
	}
	if rep.Width != flexcodec.NativeWidth {
		return nil, ferr.Borrow(ferr.BorrowBitWidthMismatch, "borrow requires native variant bit-width")
	}
	return reinterpretFrom[uint](br, count)
}

type borrowReader interface {
	BorrowRead(n int) ([]byte, error)
}

func reinterpretFrom[T any](br borrowReader, count int) ([]T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if count == 0 || width == 0 {
		return []T{}, nil
	}
	raw, err := br.BorrowRead(count * width)
	if err != nil {
		return nil, err
	}
	align := int(unsafe.Alignof(zero))
	if uintptr(unsafe.Pointer(&raw[0]))%uintptr(align) != 0 {
		return nil, ferr.Borrow(ferr.BorrowAlignmentMismatch, "source address does not satisfy destination alignment")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), count), nil
}

// DecodeOrCopy implements the "borrow when cheap, copy when not" idiom
// spec.md's design notes describe: it tries borrowFn first, and on any
// recoverable borrow failure (ferr.IsRecoverableBorrow) falls back to
// copyFn, which typically wraps the ordinary flexcodec.Decode path.
// Grounded on the original Rust ende crate's Encoder::own helper, which
// retries a BorrowDecode failure through owned Decode (see SPEC_FULL.md
// §4.K.2).
func DecodeOrCopy[T any](borrowFn func() (T, error), copyFn func() (T, error)) (T, error) {
	kind := reflect.TypeOf((*T)(nil)).Elem().String()
	log := logrus.StandardLogger()
	v, err := borrowFn()
	if err == nil {
		metrics.ObserveBorrowAttempt(kind, "ok")
		log.Tracef("borrow succeeded: kind=%s", kind)
		return v, nil
	}
	if ferr.IsRecoverableBorrow(err) {
		metrics.ObserveBorrowAttempt(kind, "recoverable")
		log.Debugf("borrow fell back to copy: kind=%s reason=%v", kind, err)
		return copyFn()
	}
	metrics.ObserveBorrowAttempt(kind, "fatal")
	log.Debugf("borrow failed fatally: kind=%s reason=%v", kind, err)
	return v, err
}

// PeekIntSlice is the non-consuming, idempotent analogue of IntSlice,
// backed by stream.BorrowReader.Peek rather than BorrowRead (spec §4.F:
// "peek_bytes(len) is non-consuming and idempotent").
func PeekIntSlice[T Int](enc *flexcodec.Encoder, count int) ([]T, error) {
	br, ok := enc.BorrowReader()
	if !ok {
		return nil, ferr.Borrow(ferr.BorrowUnsupported, "stream does not support borrow-read")
	}
	rep := enc.Ctx.Settings.NumRepr
	if !rep.NumEncoding.IsBorrowable() {
		return nil, ferr.Borrow(ferr.BorrowNonBorrowableNumEncoding, "borrow requires Fixed num-encoding")
	}
	if rep.Endianness != flexcodec.NativeEndianness {
		return nil, ferr.Borrow(ferr.BorrowEndiannessMismatch, "borrow requires native endianness")
	}
	var zero T
	width := int(unsafe.Sizeof(zero))
	if count == 0 || width == 0 {
		return []T{}, nil
	}
	raw, err := br.Peek(count * width)
	if err != nil {
		return nil, err
	}
	align := int(unsafe.Alignof(zero))
	if uintptr(unsafe.Pointer(&raw[0]))%uintptr(align) != 0 {
		return nil, ferr.Borrow(ferr.BorrowAlignmentMismatch, "source address does not satisfy destination alignment")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), count), nil
}
