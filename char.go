package flexcodec

import "github.com/rony4d/flexcodec/ferr"

// WriteChar encodes one Unicode scalar under the Context's current
// StringRepr (spec §4.D Char). The caller is responsible for only ever
// passing a valid scalar (Go's rune type does not enforce this at
// compile time, unlike Rust's char); an invalid rune is rejected with an
// InvalidChar error under every StrEncoding.
func (e *Encoder) WriteChar(r rune) error {
	cp := uint32(r)
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return ferr.InvalidChar(cp)
	}
	switch e.Ctx.Settings.StringRepr.StrEncoding {
	case Utf8:
		return e.writeCharUtf8(cp)
	case Utf16:
		return e.writeCharUtf16(cp)
	case Utf32:
		return e.writeCharUtf32(cp)
	default:
		return e.writeCharUtf8(cp)
	}
}

// ReadChar decodes one Unicode scalar under the current StringRepr.
func (e *Encoder) ReadChar() (rune, error) {
	switch e.Ctx.Settings.StringRepr.StrEncoding {
	case Utf8:
		return e.readCharUtf8()
	case Utf16:
		return e.readCharUtf16()
	case Utf32:
		return e.readCharUtf32()
	default:
		return e.readCharUtf8()
	}
}

func (e *Encoder) writeCharUtf8(cp uint32) error {
	switch {
	case cp < 0x80:
		return e.W.Write([]byte{byte(cp)})
	case cp < 0x800:
		return e.W.Write([]byte{
			0xC0 | byte(cp>>6),
			0x80 | byte(cp&0x3F),
		})
	case cp < 0x10000:
		return e.W.Write([]byte{
			0xE0 | byte(cp>>12),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		})
	default:
		return e.W.Write([]byte{
			0xF0 | byte(cp>>18),
			0x80 | byte((cp>>12)&0x3F),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		})
	}
}

// utf8LeadingOnes counts the number of leading 1 bits in a UTF-8 leading
// byte, used to classify it per spec §4.D ("leading-ones ∈ {0,2,3,4}").
func utf8LeadingOnes(b byte) int {
	n := 0
	for n < 8 && b&(0x80>>uint(n)) != 0 {
		n++
	}
	return n
}

func (e *Encoder) readCharUtf8() (rune, error) {
	var lead [1]byte
	if err := e.R.Read(lead[:]); err != nil {
		return 0, err
	}
	ones := utf8LeadingOnes(lead[0])
	var cp uint32
	var extra int
	switch ones {
	case 0:
		return rune(lead[0]), nil
	case 2:
		cp = uint32(lead[0] & 0x1F)
		extra = 1
	case 3:
		cp = uint32(lead[0] & 0x0F)
		extra = 2
	case 4:
		cp = uint32(lead[0] & 0x07)
		extra = 3
	default:
		return 0, ferr.StringErr(ferr.StringInvalidUtf8, "invalid UTF-8 leading byte class")
	}
	cont := make([]byte, extra)
	if err := e.R.Read(cont); err != nil {
		return 0, err
	}
	for _, b := range cont {
		if utf8LeadingOnes(b) != 1 {
			return 0, ferr.StringErr(ferr.StringInvalidUtf8, "invalid UTF-8 continuation byte")
		}
		cp = (cp << 6) | uint32(b&0x3F)
	}
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return 0, ferr.InvalidChar(cp)
	}
	return rune(cp), nil
}

func (e *Encoder) writeCharUtf16(cp uint32) error {
	end := e.Ctx.Settings.StringRepr.Endianness
	if cp < 0x10000 {
		return writeFixed(e.W, Bit16, end, u128FromU64(uint64(cp)))
	}
	v := cp - 0x10000
	hi := 0xD800 + (v >> 10)
	lo := 0xDC00 + (v & 0x3FF)
	if err := writeFixed(e.W, Bit16, end, u128FromU64(uint64(hi))); err != nil {
		return err
	}
	return writeFixed(e.W, Bit16, end, u128FromU64(uint64(lo)))
}

func (e *Encoder) readCharUtf16() (rune, error) {
	end := e.Ctx.Settings.StringRepr.Endianness
	first, err := readFixed(e.R, Bit16, end)
	if err != nil {
		return 0, err
	}
	u1 := uint32(first.lo)
	switch {
	case u1 < 0xD800 || u1 > 0xDFFF:
		return rune(u1), nil
	case u1 >= 0xDC00:
		return 0, ferr.StringErr(ferr.StringInvalidUtf16, "unpaired low surrogate")
	default:
		second, err := readFixed(e.R, Bit16, end)
		if err != nil {
			return 0, err
		}
		u2 := uint32(second.lo)
		if u2 < 0xDC00 || u2 > 0xDFFF {
			return 0, ferr.StringErr(ferr.StringInvalidUtf16, "high surrogate not followed by low surrogate")
		}
		cp := 0x10000 + ((u1 - 0xD800) << 10) + (u2 - 0xDC00)
		return rune(cp), nil
	}
}

func (e *Encoder) writeCharUtf32(cp uint32) error {
	return writeFixed(e.W, Bit32, e.Ctx.Settings.StringRepr.Endianness, u128FromU64(uint64(cp)))
}

func (e *Encoder) readCharUtf32() (rune, error) {
	v, err := readFixed(e.R, Bit32, e.Ctx.Settings.StringRepr.Endianness)
	if err != nil {
		return 0, err
	}
	cp := uint32(v.lo)
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return 0, ferr.StringErr(ferr.StringInvalidUtf32, "invalid Unicode scalar")
	}
	return rune(cp), nil
}
