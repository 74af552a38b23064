package flexcodec

// WriteByte/WriteBytes/ReadByte/ReadBytes pass through the underlying
// Write/Read capability verbatim; no settings are consulted (spec §4.D
// Raw bytes).
func (e *Encoder) WriteByte(b byte) error { return e.W.Write([]byte{b}) }

func (e *Encoder) WriteBytes(b []byte) error { return e.W.Write(b) }

func (e *Encoder) ReadByte() (byte, error) {
	var buf [1]byte
	if err := e.R.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (e *Encoder) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := e.R.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
