package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"passvault/internal/logger"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// keyBox is the private implementation of [KeyBox]. It stores the vault key
// in a plain file next to the database: the key file outside the database is
// what makes the scheme envelope encryption rather than a single locked box.
type keyBox struct {
	// keyFilePath is where the raw symmetric key bytes live on disk.
	keyFilePath string

	logger *logger.Logger
}

// NewKeyBox constructs a [KeyBox] persisting its key material at keyFilePath.
func NewKeyBox(keyFilePath string, logger *logger.Logger) KeyBox {
	return &keyBox{
		keyFilePath: keyFilePath,
		logger:      logger,
	}
}

// LoadOrGenerateKey implements [KeyBox]. On the first run for a given path it
// reads 32 random bytes from the OS CSPRNG and writes them to the key file
// with mode 0600 before returning; every later call returns the persisted
// bytes unchanged. The write happens at most once per storage location.
func (k *keyBox) LoadOrGenerateKey() ([]byte, error) {
	key, err := os.ReadFile(k.keyFilePath)
	if err == nil {
		if len(key) != keySize {
			return nil, fmt.Errorf("key file %s holds %d bytes, want %d", k.keyFilePath, len(key), keySize)
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key = make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key material: %w", err)
	}

	if err := os.WriteFile(k.keyFilePath, key, 0o600); err != nil {
		return nil, fmt.Errorf("persist key material: %w", err)
	}
	k.logger.Info().Str("func", "keyBox.LoadOrGenerateKey").Msg("generated new vault key material")

	return key, nil
}

// Encrypt implements [KeyBox]. It seals plaintext with key using AES-256-GCM.
// A random 12-byte nonce is prepended to the ciphertext so the decryption
// side can locate it: blob = nonce ‖ ciphertext. The blob is returned Base64
// (standard encoding) so it stores cleanly in a TEXT column.
func (k *keyBox) Encrypt(plaintext []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [KeyBox]. It reverses [keyBox.Encrypt]: Base64-decodes
// the blob, splits out the nonce, and opens the ciphertext with key. Every
// failure path wraps [ErrDecryption] so callers can match one sentinel for
// corrupt input, truncated blobs, and foreign-key ciphertext alike. The
// GCM auth tag guarantees tampering surfaces here rather than as garbage.
func (k *keyBox) Decrypt(blob string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrDecryption, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open ciphertext: %w", ErrDecryption, err)
	}

	return plaintext, nil
}
