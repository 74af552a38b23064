package flexcodec

import "github.com/rony4d/flexcodec/stream"

// WriteCString/ReadCString implement the null-terminated string codec
// spec.md's Open Questions flag as unresolved future work and
// deliberately leaves asymmetric rather than "fixing": with size_flatten
// armed, the inner encoded bytes are written with NO trailing NUL (the
// length is already known from context, consumed through the normal
// flatten contract); without it, the bytes are written followed by a
// single 0x00 terminator and no length prefix at all. A flattened and a
// non-flattened write of the same string therefore differ by exactly one
// byte — this is documented here rather than resolved, per SPEC_FULL.md
// §4.K.3, since the source material says the asymmetry "should be
// confirmed with format consumers before implementing."
//
// Only UTF-8 is fully supported by the non-flattened (scanning) decode
// path: the terminator is a single 0x00 byte, which cannot appear inside
// a valid UTF-8 continuation sequence but can appear as a legitimate
// UTF-16/32 code unit byte, so callers using those encodings should
// prefer the flattened form.
func (e *Encoder) WriteCString(s string) error {
	track := stream.NewSizeTrack(stream.ZeroSink{})
	measuring := &Encoder{W: track, Ctx: e.Ctx}
	for _, r := range s {
		if err := measuring.WriteChar(r); err != nil {
			return err
		}
	}
	flattened := e.Ctx.sizeFlatten.armed
	if flattened {
		if err := e.WriteSize(track.N); err != nil {
			return err
		}
	}
	for _, r := range s {
		if err := e.WriteChar(r); err != nil {
			return err
		}
	}
	if !flattened {
		return e.WriteByte(0)
	}
	return nil
}

func (e *Encoder) ReadCString() (string, error) {
	if e.Ctx.sizeFlatten.armed {
		n, err := e.ReadSize()
		if err != nil {
			return "", err
		}
		limited := stream.NewSizeLimit(e.R, n)
		sub := &Encoder{R: limited, Ctx: e.Ctx}
		var out []rune
		for limited.RemainingReadable() > 0 {
			r, err := sub.ReadChar()
			if err != nil {
				return "", err
			}
			out = append(out, r)
		}
		return string(out), nil
	}
	var buf []byte
	for {
		b, err := e.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}
