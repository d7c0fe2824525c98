package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/ports"
)

// KeySize is the required key length (AES-256).
const KeySize = 32

// ErrKeySize is returned for keys that are not KeySize bytes long.
var ErrKeySize = fmt.Errorf("encryption key must be %d bytes", KeySize)

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey encrypts new documents.
	ActiveKey []byte

	// FallbackKeys are tried in order when the active key cannot decrypt
	// an entry, so keys can be rotated without flushing the cache.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.DocumentCache
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that seals cached documents
// with AES-GCM. Entries are stored as nonce followed by ciphertext.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != KeySize {
		return nil, ErrKeySize
	}
	for _, k := range config.FallbackKeys {
		if len(k) != KeySize {
			return nil, ErrKeySize
		}
	}
	return func(next ports.DocumentCache) ports.DocumentCache {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

func (m *encryptionMiddleware) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := m.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := decryptWithRotation(sealed, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt document: %w", err)
	}
	return plain, nil
}

func (m *encryptionMiddleware) Put(ctx context.Context, key string, doc []byte) error {
	sealed, err := encrypt(doc, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt document: %w", err)
	}
	return m.next.Put(ctx, key, sealed)
}

func (m *encryptionMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

// Keys are fingerprints, never document content, so they pass through.
func (m *encryptionMiddleware) Keys(ctx context.Context) ([]string, error) {
	return m.next.Keys(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
