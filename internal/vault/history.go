package vault

import (
	"context"
	"fmt"
	"strings"

	"passvault/internal/logger"
	"passvault/models"
)

// RecordHistory appends plaintextPassword (encrypted) to the generation
// ledger. Every generated password is recorded, whether or not it is ever
// saved as a credential.
func (v *Vault) RecordHistory(ctx context.Context, plaintextPassword string) error {
	encrypted, err := v.keyBox.Encrypt([]byte(plaintextPassword), v.key)
	if err != nil {
		return fmt.Errorf("encrypt history entry: %w", err)
	}

	if err := v.storages.History.Append(ctx, encrypted, v.now()); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}

	return nil
}

// History returns generated passwords newest first, decrypted. A limit of
// zero or less means no cap. A non-empty search keeps only entries whose
// decrypted plaintext contains the substring; matching ciphertext would
// never hit, since every encryption of the same value differs. Entries that
// fail to decrypt keep a nil password; a search drops them, since there is
// no plaintext to match.
func (v *Vault) History(ctx context.Context, limit int, search string) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	// The cap applies to rows fetched, not rows matched: fetch unbounded
	// when searching, trim after the filter.
	fetchLimit := limit
	if search != "" {
		fetchLimit = 0
	}

	entries, err := v.storages.History.List(ctx, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	result := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Password != nil {
			plaintext, err := v.keyBox.Decrypt(*entry.Password, v.key)
			if err != nil {
				log.Warn().
					Str("func", "*Vault.History").
					Int64("id", entry.ID).
					Msg("history ciphertext failed to decrypt")
				entry.Password = nil
			} else {
				value := string(plaintext)
				entry.Password = &value
			}
		}

		if search != "" {
			if entry.Password == nil || !strings.Contains(*entry.Password, search) {
				continue
			}
		}

		result = append(result, entry)
		if search != "" && limit > 0 && len(result) == limit {
			break
		}
	}

	return result, nil
}
