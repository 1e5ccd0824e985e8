package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"passvault/internal/crypto"
	"passvault/internal/logger"
	"passvault/models"
)

// Save encrypts plaintextPassword under the vault key and inserts a new
// credential. An empty category defaults to [models.DefaultCategory]; a nil
// expiry defaults to now plus [models.DefaultExpiryDays]. Strength policy is
// deliberately not enforced here; that is the caller's concern, layered
// above the vault.
func (v *Vault) Save(ctx context.Context, website, username, plaintextPassword, category string, expiry *time.Time) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if category == "" {
		category = models.DefaultCategory
	}

	now := v.now()
	expiryDate := now.AddDate(0, 0, models.DefaultExpiryDays)
	if expiry != nil {
		expiryDate = *expiry
	}

	encrypted, err := v.keyBox.Encrypt([]byte(plaintextPassword), v.key)
	if err != nil {
		return models.Credential{}, fmt.Errorf("encrypt credential password: %w", err)
	}

	credential := models.Credential{
		Website:    website,
		Username:   username,
		Password:   &encrypted,
		Category:   category,
		CreatedAt:  now,
		ExpiryDate: expiryDate,
	}

	id, err := v.storages.Credentials.Save(ctx, credential)
	if err != nil {
		return models.Credential{}, fmt.Errorf("save credential: %w", err)
	}

	credential.ID = id
	credential.Password = &plaintextPassword
	log.Debug().
		Str("func", "*Vault.Save").
		Int64("id", id).
		Str("website", website).
		Msg("credential saved")

	return credential, nil
}

// GetAll returns every stored credential with passwords decrypted. A row
// whose ciphertext cannot be opened keeps a nil password instead of
// aborting the whole listing.
func (v *Vault) GetAll(ctx context.Context) ([]models.Credential, error) {
	items, err := v.storages.Credentials.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	v.decryptCredentials(ctx, items)
	return items, nil
}

// ExportAll returns every stored credential with passwords decrypted,
// ordered by website ascending. Per-row decryption failures degrade to nil
// passwords, same as [Vault.GetAll].
func (v *Vault) ExportAll(ctx context.Context) ([]models.Credential, error) {
	items, err := v.storages.Credentials.ExportAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export credentials: %w", err)
	}

	v.decryptCredentials(ctx, items)
	return items, nil
}

// CheckExpiry reports whether the credential's expiry date has passed.
func (v *Vault) CheckExpiry(ctx context.Context, id int64) (bool, error) {
	credential, err := v.storages.Credentials.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}

	return credential.ExpiryDate.Before(v.now()), nil
}

// decryptCredentials replaces ciphertext passwords with plaintext in place.
// Rows that fail to decrypt get a nil password and a warning; anything other
// than a decryption failure is also degraded per row, keeping batch reads
// total.
func (v *Vault) decryptCredentials(ctx context.Context, items []models.Credential) {
	log := logger.FromContext(ctx)

	for i := range items {
		if items[i].Password == nil {
			continue
		}

		plaintext, err := v.keyBox.Decrypt(*items[i].Password, v.key)
		if err != nil {
			if !errors.Is(err, crypto.ErrDecryption) {
				log.Err(err).
					Str("func", "*Vault.decryptCredentials").
					Int64("id", items[i].ID).
					Msg("unexpected error decrypting credential")
			} else {
				log.Warn().
					Str("func", "*Vault.decryptCredentials").
					Int64("id", items[i].ID).
					Msg("credential ciphertext failed to decrypt")
			}
			items[i].Password = nil
			continue
		}

		value := string(plaintext)
		items[i].Password = &value
	}
}
