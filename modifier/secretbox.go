package modifier

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// SecretBox is an authenticated Cipher backed by
// golang.org/x/crypto/nacl/secretbox (XSalsa20-Poly1305), also grounded
// in SnellerInc-sneller's golang.org/x/crypto dependency. Unlike
// ChaCha20, it verifies integrity — at the cost of buffering the whole
// sub-encode in memory before sealing, since secretbox seals one message
// at a time rather than streaming: there is no partial-seal API to write
// through incrementally.
type SecretBox struct {
	Key [32]byte
}

func (s SecretBox) NewWriter(dst io.Writer) (WriteFinisher, error) {
	return &secretBoxWriteFinisher{key: s.Key, dst: dst}, nil
}

func (s SecretBox) NewReader(src io.Reader) (ReadFinisher, error) {
	sealed, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("modifier: secretbox reader: reading sealed payload: %w", err)
	}
	if len(sealed) < 24 {
		return nil, fmt.Errorf("modifier: secretbox reader: sealed payload shorter than its nonce")
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.Key)
	if !ok {
		return nil, fmt.Errorf("modifier: secretbox reader: authentication failed")
	}
	return &secretBoxReadFinisher{r: bytes.NewReader(plain)}, nil
}

type secretBoxWriteFinisher struct {
	key [32]byte
	dst io.Writer
	buf bytes.Buffer
}

func (s *secretBoxWriteFinisher) Write(p []byte) (int, error) { return s.buf.Write(p) }

// Finish is where all the real work happens: a fresh nonce is generated,
// the buffered plaintext is sealed, and nonce||ciphertext is written to
// the destination in one shot — the "flush buffered data and emit the
// transform's terminator" spec §4.E requires, just concentrated entirely
// at finish time instead of spread across incremental writes.
func (s *secretBoxWriteFinisher) Finish() error {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("modifier: secretbox writer: generating nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], s.buf.Bytes(), &nonce, &s.key)
	_, err := s.dst.Write(sealed)
	return err
}

type secretBoxReadFinisher struct {
	r *bytes.Reader
}

func (s *secretBoxReadFinisher) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *secretBoxReadFinisher) Finish() error                { return nil }
