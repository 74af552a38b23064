package flexcodec

import "fmt"

// Opaque is the common maximum-width integer carrier used to defer the
// choice of BitWidth to runtime: it can hold any integer in
// [-2^127, 2^128-1], tagged by whether it originated from a signed or
// unsigned value, and supports fallible narrowing to any concrete
// integer type. Size and variant operations dispatch through Opaque so
// the width (8/16/32/64/128 bits, picked by SizeRepr.Width or
// VariantRepr.Width at runtime) is resolved in one place rather than in
// one code path per width, per spec design notes.
type Opaque struct {
	bits   uint128
	signed bool
}

// OpaqueFromUint64 builds an unsigned Opaque.
func OpaqueFromUint64(v uint64) Opaque { return Opaque{bits: u128FromU64(v)} }

// OpaqueFromInt64 builds a signed Opaque.
func OpaqueFromInt64(v int64) Opaque { return Opaque{bits: u128FromI64(v), signed: true} }

// OpaqueFromUsize builds an unsigned Opaque from a platform size.
func OpaqueFromUsize(v uint) Opaque { return OpaqueFromUint64(uint64(v)) }

// OpaqueFromIsize builds a signed Opaque from a platform isize.
func OpaqueFromIsize(v int) Opaque { return OpaqueFromInt64(int64(v)) }

func (o Opaque) IsSigned() bool { return o.signed }

// ErrOpaqueOverflow is returned by every narrowing accessor when the held
// value does not fit the destination type's range.
type ErrOpaqueOverflow struct {
	Dest string
}

func (e *ErrOpaqueOverflow) Error() string {
	return fmt.Sprintf("flexcodec: opaque value overflows destination type %s", e.Dest)
}

func narrowUnsigned(o Opaque, destBits uint, dest string) (uint128, error) {
	if o.signed && o.bits.isNegative() {
		return uint128{}, &ErrOpaqueOverflow{Dest: dest}
	}
	masked := o.bits.maskToWidth(destBits)
	if !masked.eq(o.bits) {
		return uint128{}, &ErrOpaqueOverflow{Dest: dest}
	}
	return masked, nil
}

func narrowSigned(o Opaque, destBits uint, dest string) (uint128, error) {
	// Whether the source was tagged signed or unsigned, check that the
	// pattern, interpreted as a destBits-wide two's complement value,
	// sign-extends back to exactly the original value.
	candidate := o.bits.maskToWidth(destBits).signExtend(destBits)
	if !candidate.eq(o.bits) {
		return uint128{}, &ErrOpaqueOverflow{Dest: dest}
	}
	return candidate, nil
}

func (o Opaque) ToUint8() (uint8, error) {
	v, err := narrowUnsigned(o, 8, "u8")
	return uint8(v.lo), err
}
func (o Opaque) ToUint16() (uint16, error) {
	v, err := narrowUnsigned(o, 16, "u16")
	return uint16(v.lo), err
}
func (o Opaque) ToUint32() (uint32, error) {
	v, err := narrowUnsigned(o, 32, "u32")
	return uint32(v.lo), err
}
func (o Opaque) ToUint64() (uint64, error) {
	v, err := narrowUnsigned(o, 64, "u64")
	return v.lo, err
}
func (o Opaque) ToUint128() (hi, lo uint64, err error) {
	v, err := narrowUnsigned(o, 128, "u128")
	return v.hi, v.lo, err
}
func (o Opaque) ToUsize() (uint, error) {
	v, err := narrowUnsigned(o, uint(NativeWidth.Bits()), "usize")
	return uint(v.lo), err
}

func (o Opaque) ToInt8() (int8, error) {
	v, err := narrowSigned(o, 8, "i8")
	return int8(v.lo), err
}
func (o Opaque) ToInt16() (int16, error) {
	v, err := narrowSigned(o, 16, "i16")
	return int16(v.lo), err
}
func (o Opaque) ToInt32() (int32, error) {
	v, err := narrowSigned(o, 32, "i32")
	return int32(v.lo), err
}
func (o Opaque) ToInt64() (int64, error) {
	v, err := narrowSigned(o, 64, "i64")
	return int64(v.lo), err
}
func (o Opaque) ToIsize() (int, error) {
	v, err := narrowSigned(o, uint(NativeWidth.Bits()), "isize")
	return int(v.lo), err
}
