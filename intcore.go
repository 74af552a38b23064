package flexcodec

import (
	"github.com/rony4d/flexcodec/ferr"
	"github.com/rony4d/flexcodec/stream"
)

// This file implements the bit-exact integer framing rules of spec §4.D,
// centralized on the uint128 carrier so every concrete width (8..128) and
// every NumEncoding shares one engine, per the design notes: "centralise
// this on an intermediate maximum-width value... rather than duplicating
// ten code paths per size operation." The per-type monomorphic functions
// in integers.go are thin wrappers over writeIntCore/readIntCore.

func writeFixed(w stream.Writer, width BitWidth, end Endianness, v uint128) error {
	n := width.Bytes()
	buf := make([]byte, n)
	if n <= 8 {
		fillLE(buf, v.lo)
	} else {
		fillLE(buf[:8], v.lo)
		fillLE(buf[8:], v.hi)
	}
	if end == BigEndian {
		reverseBytes(buf)
	}
	return w.Write(buf)
}

func readFixed(r stream.Reader, width BitWidth, end Endianness) (uint128, error) {
	n := width.Bytes()
	buf := make([]byte, n)
	if err := r.Read(buf); err != nil {
		return uint128{}, err
	}
	if end == BigEndian {
		reverseBytes(buf)
	}
	var v uint128
	if n <= 8 {
		v.lo = readLE(buf)
	} else {
		v.lo = readLE(buf[:8])
		v.hi = readLE(buf[8:])
	}
	return v, nil
}

func fillLE(buf []byte, v uint64) {
	for i := range buf {
		buf[i] = byte(v)
		v >>= 8
	}
}

func readLE(buf []byte) uint64 {
	var v uint64
	for i := len(buf) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(buf[i])
	}
	return v
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// writeULEB128 emits the standard unsigned LEB128 framing: 7-bit groups,
// little-endian group order, high bit set while more non-zero bits
// remain. Endianness is ignored, per spec.
func writeULEB128(w stream.Writer, v uint128, widthBits uint) error {
	for {
		group := v.low7()
		v = v.shr(7)
		if v.isZero() {
			return w.Write([]byte{group})
		}
		if err := w.Write([]byte{group | 0x80}); err != nil {
			return err
		}
	}
}

// readULEB128 mirrors writeULEB128, capped at widthBits/7 + 1 groups; if
// the shift meets or exceeds widthBits before a terminator byte, it's a
// VarIntError.
func readULEB128(r stream.Reader, widthBits uint) (uint128, error) {
	var result uint128
	var shift uint
	var b [1]byte
	for {
		if err := r.Read(b[:]); err != nil {
			return uint128{}, err
		}
		if shift >= widthBits {
			return uint128{}, ferr.VarInt("varint decoder exceeded its bit budget without a terminator")
		}
		result = result.or(u128FromU64(uint64(b[0] & 0x7f)).shl(shift))
		shift += 7
		if b[0]&0x80 == 0 {
			return result, nil
		}
	}
}

// writeSLEB128 is the signed LEB128 framing: terminate once the
// arithmetic-shifted remainder is all-zero (for a positive/zero value)
// or all-one (for a negative value) given the sign bit just emitted.
func writeSLEB128(w stream.Writer, v uint128, widthBits uint) error {
	v = v.signExtend(widthBits)
	for {
		group := v.low7()
		signBitSet := group&0x40 != 0
		v = v.ashr(7)
		done := (v.isZero() && !signBitSet) || (v.isAllOnes() && signBitSet)
		if done {
			return w.Write([]byte{group})
		}
		if err := w.Write([]byte{group | 0x80}); err != nil {
			return err
		}
	}
}

// readSLEB128 mirrors writeSLEB128, sign-extending the result once the
// terminator byte is read if it terminated early.
func readSLEB128(r stream.Reader, widthBits uint) (uint128, error) {
	var result uint128
	var shift uint
	var b [1]byte
	for {
		if err := r.Read(b[:]); err != nil {
			return uint128{}, err
		}
		if shift >= widthBits {
			return uint128{}, ferr.VarInt("varint decoder exceeded its bit budget without a terminator")
		}
		result = result.or(u128FromU64(uint64(b[0] & 0x7f)).shl(shift))
		shift += 7
		if b[0]&0x80 == 0 {
			if shift < widthBits && b[0]&0x40 != 0 {
				allOnes := uint128{^uint64(0), ^uint64(0)}
				result = result.or(allOnes.shl(shift))
			}
			result = result.maskToWidth(widthBits).signExtend(widthBits)
			return result, nil
		}
	}
}

// writeZigzag encodes (v<<1) ^ (v>>(bits-1)) as unsigned LEB128 (spec §4.D
// ProtobufZigzag).
func writeZigzag(w stream.Writer, v uint128, widthBits uint) error {
	v = v.signExtend(widthBits)
	z := v.shl(1).xor(v.ashr(widthBits - 1))
	return writeULEB128(w, z.maskToWidth(widthBits), widthBits)
}

func readZigzag(r stream.Reader, widthBits uint) (uint128, error) {
	u, err := readULEB128(r, widthBits)
	if err != nil {
		return uint128{}, err
	}
	var v uint128
	if u.lo&1 == 1 {
		v = u.shr(1).not()
	} else {
		v = u.shr(1)
	}
	return v.maskToWidth(widthBits).signExtend(widthBits), nil
}

// writeProtobufWasteful reinterprets the signed bit pattern as unsigned
// and emits standard unsigned LEB128 (spec §4.D ProtobufWasteful).
func writeProtobufWasteful(w stream.Writer, v uint128, widthBits uint) error {
	return writeULEB128(w, v.maskToWidth(widthBits), widthBits)
}

func readProtobufWasteful(r stream.Reader, widthBits uint) (uint128, error) {
	u, err := readULEB128(r, widthBits)
	if err != nil {
		return uint128{}, err
	}
	return u.signExtend(widthBits), nil
}
