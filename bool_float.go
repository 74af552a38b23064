package flexcodec

import (
	"math"

	"github.com/rony4d/flexcodec/ferr"
)

// WriteBool writes a single byte, {0x00, 0x01}, no endianness, subject to
// the bool flatten channel (spec §4.D Boolean).
func (e *Encoder) WriteBool(v bool) error {
	if e.Ctx.boolFlatten.armed {
		want := e.Ctx.boolFlatten.value
		if v != want {
			return ferr.Flatten(ferr.FlattenBoolMismatch, "written bool does not match armed bool_flatten value")
		}
		e.Ctx.boolFlatten = flattenBool{}
		e.Ctx.logger().Trace("bool flatten consumed on write")
		return nil
	}
	b := byte(0)
	if v {
		b = 1
	}
	return e.W.Write([]byte{b})
}

// ReadBool mirrors WriteBool; any byte outside {0,1} is InvalidBool.
func (e *Encoder) ReadBool() (bool, error) {
	if e.Ctx.boolFlatten.armed {
		v := e.Ctx.boolFlatten.value
		e.Ctx.boolFlatten = flattenBool{}
		e.Ctx.logger().Trace("bool flatten consumed on read")
		return v, nil
	}
	var buf [1]byte
	if err := e.R.Read(buf[:]); err != nil {
		return false, err
	}
	switch buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ferr.InvalidBool(buf[0])
	}
}

// WriteF32/WriteF64 transit float bits as u32/u64 with NumEncoding forced
// to Fixed but the current Endianness honoured (spec §4.D Float). No
// denormal or NaN canonicalisation is performed.
func (e *Encoder) WriteF32(v float32) error {
	bits := math.Float32bits(v)
	return writeFixed(e.W, Bit32, e.Ctx.Settings.NumRepr.Endianness, u128FromU64(uint64(bits)))
}

func (e *Encoder) ReadF32() (float32, error) {
	v, err := readFixed(e.R, Bit32, e.Ctx.Settings.NumRepr.Endianness)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v.lo)), nil
}

func (e *Encoder) WriteF64(v float64) error {
	bits := math.Float64bits(v)
	return writeFixed(e.W, Bit64, e.Ctx.Settings.NumRepr.Endianness, u128FromU64(bits))
}

func (e *Encoder) ReadF64() (float64, error) {
	v, err := readFixed(e.R, Bit64, e.Ctx.Settings.NumRepr.Endianness)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v.lo), nil
}
