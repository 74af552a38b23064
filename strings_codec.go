package flexcodec

import "github.com/rony4d/flexcodec/stream"

// WriteString writes a string in two phases (spec §4.D String): first a
// measuring pass through a Zero sink wrapped in SizeTrack to learn the
// encoded byte length under the current StringRepr, then the real
// length-prefixed write. The length is written through WriteSize, so it
// honours size_flatten/MaxSize exactly as any other size would.
func (e *Encoder) WriteString(s string) error {
	track := stream.NewSizeTrack(stream.ZeroSink{})
	measuring := &Encoder{W: track, Ctx: e.Ctx}
	for _, r := range s {
		if err := measuring.WriteChar(r); err != nil {
			return err
		}
	}
	if err := e.WriteSize(track.N); err != nil {
		return err
	}
	for _, r := range s {
		if err := e.WriteChar(r); err != nil {
			return err
		}
	}
	return nil
}

// ReadString reads the length, clamps a SizeLimit over the reader at
// exactly that many bytes, and decodes chars until the limit is hit with
// zero bytes remaining. Hitting the limit mid-char is a hard error;
// hitting it exactly at a char boundary ends the string.
func (e *Encoder) ReadString() (string, error) {
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
			// The limiter rejects a read that would exceed what's left,
			// so a mid-char error here always means the declared length
			// ended inside a multi-byte/unit char, not at a boundary.
			return "", err
		}
		out = append(out, r)
	}
	return string(out), nil
}
