package modifier

import (
	"crypto/cipher"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ChaCha20 is a Cipher backed by golang.org/x/crypto/chacha20, grounded in
// SnellerInc-sneller's golang.org/x/crypto dependency. It streams through
// crypto/cipher.StreamWriter/StreamReader the same way the standard
// library composes any cipher.Stream with an io.Writer/io.Reader — no
// internal buffering, so Finish has nothing to flush for either side.
//
// This is a plain stream cipher, not an AEAD: it provides confidentiality
// but not integrity. Callers needing authenticated encryption should wrap
// the plaintext in their own MAC, or use SecretBox, which authenticates.
type ChaCha20 struct {
	Key   [chacha20.KeySize]byte
	Nonce [chacha20.NonceSize]byte
}

func (c ChaCha20) newStream() (cipher.Stream, error) {
	return chacha20.NewUnauthenticatedCipher(c.Key[:], c.Nonce[:])
}

func (c ChaCha20) NewWriter(dst io.Writer) (WriteFinisher, error) {
	s, err := c.newStream()
	if err != nil {
		return nil, fmt.Errorf("modifier: chacha20 writer: %w", err)
	}
	return chachaWriteFinisher{cipher.StreamWriter{S: s, W: dst}}, nil
}

func (c ChaCha20) NewReader(src io.Reader) (ReadFinisher, error) {
	s, err := c.newStream()
	if err != nil {
		return nil, fmt.Errorf("modifier: chacha20 reader: %w", err)
	}
	return chachaReadFinisher{cipher.StreamReader{S: s, R: src}}, nil
}

type chachaWriteFinisher struct{ sw cipher.StreamWriter }

func (c chachaWriteFinisher) Write(p []byte) (int, error) { return c.sw.Write(p) }

// Finish calls through to StreamWriter.Close, which for a plain stream
// cipher only closes the underlying writer if it implements io.Closer —
// flexcodec's stream.AsIOWriter does not, so this is effectively a no-op,
// present to satisfy the WriteFinisher contract spec §4.E requires of
// every modifier layer.
func (c chachaWriteFinisher) Finish() error { return c.sw.Close() }

type chachaReadFinisher struct{ sr cipher.StreamReader }

func (c chachaReadFinisher) Read(p []byte) (int, error) { return c.sr.Read(p) }
func (c chachaReadFinisher) Finish() error                { return nil }
