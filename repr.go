package flexcodec

import "math"

// NumRepr carries the representation for plain integers (not sizes or
// variants, which have their own reprs below since they additionally
// need a bit width and, for sizes, a cap).
type NumRepr struct {
	Endianness  Endianness
	NumEncoding NumEncoding
}

func DefaultNumRepr() NumRepr {
	return NumRepr{Endianness: LittleEndian, NumEncoding: Fixed}
}

// SizeRepr carries the representation for usize-shaped length fields:
// string/slice/map lengths, byte-slice lengths. MaxSize is an inclusive
// upper bound enforced on every size read and write (spec §3 invariants).
type SizeRepr struct {
	Endianness  Endianness
	NumEncoding NumEncoding
	Width       BitWidth
	MaxSize     uint64
}

func DefaultSizeRepr() SizeRepr {
	return SizeRepr{
		Endianness:  LittleEndian,
		NumEncoding: Fixed,
		Width:       Bit64,
		MaxSize:     math.MaxUint64,
	}
}

// VariantRepr carries the representation for tagged-union discriminants.
type VariantRepr struct {
	Endianness  Endianness
	NumEncoding NumEncoding
	Width       BitWidth
}

func DefaultVariantRepr() VariantRepr {
	return VariantRepr{Endianness: LittleEndian, NumEncoding: Fixed, Width: Bit32}
}

// StringRepr carries the representation for string/char data.
type StringRepr struct {
	StrEncoding StrEncoding
	Endianness  Endianness
}

func DefaultStringRepr() StringRepr {
	return StringRepr{StrEncoding: Utf8, Endianness: LittleEndian}
}

// BinSettings aggregates the four representation records. This is the
// "mutable representation state" spec.md §1 describes: callers swap
// pieces of it in and out of a Context around individual fields (save →
// set → body → restore), never replace the whole Context.
type BinSettings struct {
	NumRepr     NumRepr
	SizeRepr    SizeRepr
	VariantRepr VariantRepr
	StringRepr  StringRepr
}

func DefaultBinSettings() BinSettings {
	return BinSettings{
		NumRepr:     DefaultNumRepr(),
		SizeRepr:    DefaultSizeRepr(),
		VariantRepr: DefaultVariantRepr(),
		StringRepr:  DefaultStringRepr(),
	}
}
