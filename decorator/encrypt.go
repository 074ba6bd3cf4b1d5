package decorator

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kbukum/patternkit/errors"
)

// EncryptionDecorator seals data with ChaCha20-Poly1305 before handing it to
// the wrapped source, and opens it on the way back. The stored form is
// base64 so encrypted payloads remain printable.
type EncryptionDecorator struct {
	wrapped DataSource
	aead    interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
		NonceSize() int
	}
}

// NewEncryption wraps source with encryption. The key is hashed with SHA-256
// to produce the 32-byte cipher key.
func NewEncryption(source DataSource, key string) (*EncryptionDecorator, error) {
	sum := sha256.Sum256([]byte(key))
	aead, err := chacha20poly1305.New(sum[:])
	if err != nil {
		return nil, errors.Crypto("create cipher", err)
	}
	return &EncryptionDecorator{wrapped: source, aead: aead}, nil
}

func (d *EncryptionDecorator) Write(ctx context.Context, data []byte) error {
	nonce := make([]byte, d.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return errors.Crypto("generate nonce", err)
	}
	sealed := d.aead.Seal(nonce, nonce, data, nil)

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(sealed)))
	base64.StdEncoding.Encode(encoded, sealed)
	return d.wrapped.Write(ctx, encoded)
}

func (d *EncryptionDecorator) Read(ctx context.Context) ([]byte, error) {
	encoded, err := d.wrapped.Read(ctx)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(sealed, encoded)
	if err != nil {
		return nil, errors.Crypto("decode base64", err)
	}
	sealed = sealed[:n]

	nonceSize := d.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, errors.Crypto("open", fmt.Errorf("ciphertext too short: %d bytes", len(sealed)))
	}
	plain, err := d.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, errors.Crypto("open", err)
	}
	return plain, nil
}
