package vault

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/logger"
	"passvault/internal/store"
)

// MasterPasswordExists reports whether the vault has been initialised.
// Callers should check this before offering SetMasterPassword; the insert
// itself is still constraint-protected against races.
func (v *Vault) MasterPasswordExists(ctx context.Context) (bool, error) {
	return v.storages.Master.MasterPasswordExists(ctx)
}

// SetMasterPassword initialises the master-auth record. The password is
// bcrypt-hashed, then the hash is encrypted under the vault key before it is
// stored: the hash defends against guessing even if the ciphertext is
// decrypted, and key-file exposure alone does not yield the hash structure.
//
// Returns [ErrMasterAlreadySet] when the vault is already initialised; the
// stored hash is left untouched in that case.
func (v *Vault) SetMasterPassword(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	hashText, err := v.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash master password: %w", err)
	}

	encryptedHash, err := v.keyBox.Encrypt([]byte(hashText), v.key)
	if err != nil {
		return fmt.Errorf("encrypt master password hash: %w", err)
	}

	if err := v.storages.Master.SetMasterPassword(ctx, encryptedHash); err != nil {
		if errors.Is(err, store.ErrMasterAlreadySet) {
			return ErrMasterAlreadySet
		}
		return fmt.Errorf("store master password: %w", err)
	}

	log.Info().Str("func", "*Vault.SetMasterPassword").Msg("master password initialised")
	return nil
}

// VerifyMasterPassword reports whether the entered master password matches
// the stored record. Any failure along the way (no record, undecryptable
// ciphertext, malformed hash) reads as false: to the caller it is simply a
// failed authentication, never a crash.
func (v *Vault) VerifyMasterPassword(ctx context.Context, password string) (bool, error) {
	log := logger.FromContext(ctx)

	encryptedHash, err := v.storages.Master.MasterPasswordHash(ctx)
	if errors.Is(err, store.ErrMasterNotSet) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load master password hash: %w", err)
	}

	hashText, err := v.keyBox.Decrypt(encryptedHash, v.key)
	if err != nil {
		log.Warn().Str("func", "*Vault.VerifyMasterPassword").Msg("stored master hash failed to decrypt")
		return false, nil
	}

	return v.hasher.Verify(password, string(hashText)), nil
}

// ResetMasterPassword deletes the master-auth record, returning the vault
// to its uninitialised state, but only if the verification code for email
// checks out. The code is single-use: the verifier deletes it on success
// and leaves it intact on failure so the user can retry until it expires.
func (v *Vault) ResetMasterPassword(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if err := v.verifier.Verify(ctx, email, code); err != nil {
		return fmt.Errorf("verify reset code: %w", err)
	}

	if err := v.storages.Master.DeleteMasterPassword(ctx); err != nil {
		return fmt.Errorf("delete master password: %w", err)
	}

	log.Info().Str("func", "*Vault.ResetMasterPassword").Msg("master password reset, vault uninitialised")
	return nil
}

// SetMasterEmail stores the recovery address the reset flow targets. The
// first stored address wins; later calls are ignored.
func (v *Vault) SetMasterEmail(ctx context.Context, email string) error {
	return v.storages.Master.SetMasterEmail(ctx, email)
}

// MasterEmail returns the stored recovery address, or [store.ErrNotFound]
// when none has been registered.
func (v *Vault) MasterEmail(ctx context.Context) (string, error) {
	return v.storages.Master.MasterEmail(ctx)
}

// MasterEmailExists reports whether a recovery address is registered.
func (v *Vault) MasterEmailExists(ctx context.Context) (bool, error) {
	return v.storages.Master.MasterEmailExists(ctx)
}
