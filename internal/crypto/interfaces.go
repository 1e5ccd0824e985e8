package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyBox is the envelope-encryption primitive of the vault: it manages the
// locally stored symmetric key and transforms opaque byte payloads with it.
// Implementations must produce authenticated ciphertext so that tampering is
// detected at decryption time instead of yielding garbage plaintext.
type KeyBox interface {
	// LoadOrGenerateKey reads the persisted key material file, generating
	// and persisting fresh material on first run. Loss of this file
	// permanently voids all stored secrets.
	LoadOrGenerateKey() ([]byte, error)

	// Encrypt seals plaintext under key and returns a self-contained
	// printable blob.
	Encrypt(plaintext []byte, key []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt. It returns an error wrapping
	// [ErrDecryption] when the blob is corrupt, truncated, or was produced
	// under a different key.
	Decrypt(blob string, key []byte) ([]byte, error)
}

// MasterHasher is the one-way hashing primitive guarding the master
// password.
type MasterHasher interface {
	// Hash derives a salted, slow hash of password. Every call uses a fresh
	// random salt, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Verify reports whether password matches hashText. Malformed hash input
	// yields false, never an error surfaced to the caller.
	Verify(password string, hashText string) bool
}
