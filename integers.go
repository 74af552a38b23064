package flexcodec

// Uint128/Int128 are the public 128-bit carriers, since Go has no native
// type of that width. Int128 holds a two's-complement pattern in Hi/Lo.
type Uint128 struct{ Hi, Lo uint64 }
type Int128 struct{ Hi, Lo uint64 }

func (v Uint128) toInternal() uint128 { return uint128{v.Hi, v.Lo} }
func (v Int128) toInternal() uint128  { return uint128{v.Hi, v.Lo} }
func fromInternalU(v uint128) Uint128 { return Uint128{v.hi, v.lo} }
func fromInternalI(v uint128) Int128  { return Int128{v.hi, v.lo} }

// writeInt dispatches on the Context's current NumRepr, the one
// representation record shared by every plain (non-size, non-variant)
// integer write, per spec §4.D.
func (e *Encoder) writeInt(v uint128, widthBits uint, signed bool) error {
	rep := e.Ctx.Settings.NumRepr
	switch rep.NumEncoding {
	case Fixed:
		return writeFixed(e.W, bitWidthOf(widthBits), rep.Endianness, v)
	case Leb128:
		if signed {
			return writeSLEB128(e.W, v, widthBits)
		}
		return writeULEB128(e.W, v, widthBits)
	case ProtobufWasteful:
		if signed {
			return writeProtobufWasteful(e.W, v, widthBits)
		}
		return writeULEB128(e.W, v, widthBits)
	case ProtobufZigzag:
		if signed {
			return writeZigzag(e.W, v, widthBits)
		}
		return writeULEB128(e.W, v, widthBits)
	default:
		return writeFixed(e.W, bitWidthOf(widthBits), rep.Endianness, v)
	}
}

func (e *Encoder) readInt(widthBits uint, signed bool) (uint128, error) {
	rep := e.Ctx.Settings.NumRepr
	switch rep.NumEncoding {
	case Fixed:
		return readFixed(e.R, bitWidthOf(widthBits), rep.Endianness)
	case Leb128:
		if signed {
			return readSLEB128(e.R, widthBits)
		}
		return readULEB128(e.R, widthBits)
	case ProtobufWasteful:
		if signed {
			return readProtobufWasteful(e.R, widthBits)
		}
		return readULEB128(e.R, widthBits)
	case ProtobufZigzag:
		if signed {
			return readZigzag(e.R, widthBits)
		}
		return readULEB128(e.R, widthBits)
	default:
		return readFixed(e.R, bitWidthOf(widthBits), rep.Endianness)
	}
}

func bitWidthOf(bits uint) BitWidth {
	switch bits {
	case 8:
		return Bit8
	case 16:
		return Bit16
	case 32:
		return Bit32
	case 64:
		return Bit64
	default:
		return Bit128
	}
}

func (e *Encoder) WriteU8(v uint8) error  { return e.writeInt(u128FromU64(uint64(v)), 8, false) }
func (e *Encoder) WriteU16(v uint16) error { return e.writeInt(u128FromU64(uint64(v)), 16, false) }
func (e *Encoder) WriteU32(v uint32) error { return e.writeInt(u128FromU64(uint64(v)), 32, false) }
func (e *Encoder) WriteU64(v uint64) error { return e.writeInt(u128FromU64(v), 64, false) }
func (e *Encoder) WriteU128(v Uint128) error {
	return e.writeInt(v.toInternal(), 128, false)
}

func (e *Encoder) WriteI8(v int8) error  { return e.writeInt(u128FromI64(int64(v)), 8, true) }
func (e *Encoder) WriteI16(v int16) error { return e.writeInt(u128FromI64(int64(v)), 16, true) }
func (e *Encoder) WriteI32(v int32) error { return e.writeInt(u128FromI64(int64(v)), 32, true) }
func (e *Encoder) WriteI64(v int64) error { return e.writeInt(u128FromI64(v), 64, true) }
func (e *Encoder) WriteI128(v Int128) error {
	return e.writeInt(v.toInternal(), 128, true)
}

func (e *Encoder) ReadU8() (uint8, error) {
	v, err := e.readInt(8, false)
	return uint8(v.lo), err
}
func (e *Encoder) ReadU16() (uint16, error) {
	v, err := e.readInt(16, false)
	return uint16(v.lo), err
}
func (e *Encoder) ReadU32() (uint32, error) {
	v, err := e.readInt(32, false)
	return uint32(v.lo), err
}
func (e *Encoder) ReadU64() (uint64, error) {
	v, err := e.readInt(64, false)
	return v.lo, err
}
func (e *Encoder) ReadU128() (Uint128, error) {
	v, err := e.readInt(128, false)
	return fromInternalU(v), err
}

func (e *Encoder) ReadI8() (int8, error) {
	v, err := e.readInt(8, true)
	return int8(v.lo), err
}
func (e *Encoder) ReadI16() (int16, error) {
	v, err := e.readInt(16, true)
	return int16(v.lo), err
}
func (e *Encoder) ReadI32() (int32, error) {
	v, err := e.readInt(32, true)
	return int32(v.lo), err
}
func (e *Encoder) ReadI64() (int64, error) {
	v, err := e.readInt(64, true)
	return int64(v.lo), err
}
func (e *Encoder) ReadI128() (Int128, error) {
	v, err := e.readInt(128, true)
	return fromInternalI(v), err
}
