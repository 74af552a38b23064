// Package seekw implements spec §4.G's seek wrapper: a scoped jump to an
// arbitrary stream position that restores the caller's place afterward
// using only relative seeks, so it composes with streams (pipes, certain
// compressed sources) that never support absolute Start/End addressing.
//
// Grounded on the teacher's utils/fast.Reader, which tracks a bare cursor
// offset directly; this generalizes that into the save/jump/run/restore
// algorithm spec.md's with_seek describes.
package seekw

import (
	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/ferr"
	"github.com/rony4d/flexcodec/stream"
)

// With seeks to target, runs f, then restores position by the same
// relative delta it used to get there — per spec.md's with_seek:
//
//	prev := stream.seek(POSITION)
//	cur  := stream.seek(target)
//	delta := prev - cur
//	result := f(encoder)
//	stream.seek(Current(delta))
//	return result
//
// f observes the stream positioned at target, not at the caller's
// original position. If f leaves the stream somewhere other than cur
// (having read or written through it), the final restore is still
// exactly Current(delta) relative to wherever f left off — With never
// re-queries position after f runs, matching the algorithm literally.
func With[T any](enc *flexcodec.Encoder, target stream.SeekFrom, f func(*flexcodec.Encoder) (T, error)) (T, error) {
	var zero T
	sk, ok := enc.Seeker()
	if !ok {
		return zero, ferr.Borrow(ferr.BorrowUnsupported, "stream does not support seek")
	}
	prev, err := sk.Seek(stream.Position())
	if err != nil {
		return zero, err
	}
	cur, err := sk.Seek(target)
	if err != nil {
		return zero, err
	}
	delta := prev - cur

	result, bodyErr := f(enc)

	if _, restoreErr := sk.Seek(stream.Current(delta)); restoreErr != nil {
		if bodyErr == nil {
			return result, restoreErr
		}
	}
	return result, bodyErr
}

// WithVoid is With for bodies with no value to return, only a possible
// error (a scoped write at an offset, typically backpatching a length
// field once the real size is known).
func WithVoid(enc *flexcodec.Encoder, target stream.SeekFrom, f func(*flexcodec.Encoder) error) error {
	_, err := With(enc, target, func(e *flexcodec.Encoder) (struct{}, error) {
		return struct{}{}, f(e)
	})
	return err
}
