// Package vault is the service layer of the credential store. It owns every
// persisted entity, is the sole writer to the database, and is the only
// place where stored secrets are encrypted or decrypted. The crypto
// primitives themselves ([crypto.KeyBox], [crypto.MasterHasher]) are pure
// and stateless; the vault wires them to the repositories.
package vault

import (
	"context"
	"fmt"
	"time"

	"passvault/internal/crypto"
	"passvault/internal/logger"
	"passvault/internal/store"
)

const (
	// alertWindowDays is how far ahead the expiry-alert query looks.
	alertWindowDays = 7

	// dismissSuppression is the "remind me later" window: a dismissed alert
	// stays hidden this long, then resurfaces automatically.
	dismissSuppression = 24 * time.Hour
)

// CodeVerifier validates a reset verification code for an email address.
// Satisfied by the reset flow; injected so the vault never depends on code
// issuance or delivery.
type CodeVerifier interface {
	Verify(ctx context.Context, email, code string) error
}

// Vault exposes all transactional operations over the credential store.
// Construct exactly one per process with [New] and pass it to every
// consumer; there is no ambient instance.
type Vault struct {
	storages *store.Storages
	keyBox   crypto.KeyBox
	hasher   crypto.MasterHasher
	verifier CodeVerifier
	logger   *logger.Logger

	// key is the symmetric vault key, loaded once at construction.
	key []byte

	// now is the clock source; replaced in tests.
	now func() time.Time
}

// New constructs the vault service. The key material is loaded (or, on
// first run, generated and persisted) immediately so that a missing or
// corrupt key file fails startup instead of the first save.
func New(storages *store.Storages, keyBox crypto.KeyBox, hasher crypto.MasterHasher, verifier CodeVerifier, logger *logger.Logger) (*Vault, error) {
	key, err := keyBox.LoadOrGenerateKey()
	if err != nil {
		return nil, fmt.Errorf("load vault key: %w", err)
	}

	return &Vault{
		storages: storages,
		keyBox:   keyBox,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger,
		key:      key,
		now:      time.Now,
	}, nil
}
