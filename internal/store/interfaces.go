package store

import (
	"context"
	"time"

	"passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MasterRepository persists the singleton master-auth record and the
// recovery email address.
type MasterRepository interface {
	// SetMasterPassword inserts the single master-auth row. Returns
	// [ErrMasterAlreadySet] when a row already exists; the fixed primary key
	// makes the check race-safe.
	SetMasterPassword(ctx context.Context, encryptedHash string) error
	// MasterPasswordHash returns the stored encrypted hash, or
	// [ErrMasterNotSet] when the vault is uninitialised.
	MasterPasswordHash(ctx context.Context) (string, error)
	// MasterPasswordExists reports whether a master-auth row is present.
	MasterPasswordExists(ctx context.Context) (bool, error)
	// DeleteMasterPassword removes the master-auth row, returning the vault
	// to its uninitialised state.
	DeleteMasterPassword(ctx context.Context) error

	// SetMasterEmail stores the recovery address, ignoring the write when
	// one is already present (insert-if-absent).
	SetMasterEmail(ctx context.Context, email string) error
	// MasterEmail returns the stored recovery address or [ErrNotFound].
	MasterEmail(ctx context.Context) (string, error)
	// MasterEmailExists reports whether a recovery address is stored.
	MasterEmailExists(ctx context.Context) (bool, error)
}

// CredentialRepository is the low-level store of encrypted website
// credentials. Password fields hold ciphertext at this layer.
type CredentialRepository interface {
	// Save inserts a new credential and returns its assigned id.
	Save(ctx context.Context, credential models.Credential) (int64, error)
	// Get returns a single credential by id, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Credential, error)
	// GetAll returns every stored credential.
	GetAll(ctx context.Context) ([]models.Credential, error)
	// ExportAll returns every stored credential ordered by website ascending.
	ExportAll(ctx context.Context) ([]models.Credential, error)
	// ByExpiryWindow returns credentials whose expiry date falls in the
	// named window relative to now.
	ByExpiryWindow(ctx context.Context, window models.ExpiryWindow, now time.Time) ([]models.Credential, error)
	// ActiveExpiring returns credentials expiring between from and to whose
	// latest dismissal, if any, is older than dismissCutoff.
	ActiveExpiring(ctx context.Context, from, to, dismissCutoff time.Time) ([]models.ExpiringCredential, error)
}

// AlertRepository is the append-only dismissal ledger for expiry alerts.
type AlertRepository interface {
	// Dismiss appends a ledger row; it never deduplicates.
	Dismiss(ctx context.Context, credentialID int64, at time.Time) error
	// ResetAll clears the ledger so every alert resurfaces.
	ResetAll(ctx context.Context) error
}

// HistoryRepository is the append-only ledger of generated passwords.
type HistoryRepository interface {
	// Append records one generated password (ciphertext).
	Append(ctx context.Context, encryptedPassword string, at time.Time) error
	// List returns history entries newest first, capped at limit when
	// limit > 0.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// CategoryRepository maintains the unique set of credential categories.
type CategoryRepository interface {
	// Add inserts a category name, ignoring duplicates.
	Add(ctx context.Context, name string) error
	// List returns every category name.
	List(ctx context.Context) ([]string, error)
}

// CodeRepository stores at most one active verification code per email.
type CodeRepository interface {
	// Upsert inserts or replaces the code for its email address.
	Upsert(ctx context.Context, code models.VerificationCode) error
	// Get returns the stored code for email, or [ErrCodeNotFound].
	Get(ctx context.Context, email string) (models.VerificationCode, error)
	// Delete removes the stored code for email.
	Delete(ctx context.Context, email string) error
}

// PreferenceRepository is the key-value store for non-security UI settings.
type PreferenceRepository interface {
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Get returns the value for key, or [ErrNotFound].
	Get(ctx context.Context, key string) (string, error)
}
