package store

import (
	"context"
	"fmt"

	"passvault/internal/config"
	"passvault/internal/logger"
)

// Storages groups all vault repositories into a single value that can be
// passed to the service layer.
type Storages struct {
	// Master owns the master-auth singleton and the recovery email.
	Master MasterRepository
	// Credentials owns the encrypted website credentials.
	Credentials CredentialRepository
	// Alerts owns the expiry-alert dismissal ledger.
	Alerts AlertRepository
	// History owns the generated-password ledger.
	History HistoryRepository
	// Categories owns the credential category set.
	Categories CategoryRepository
	// Codes owns the reset-flow verification codes.
	Codes CodeRepository
	// Preferences owns the non-security key-value settings.
	Preferences PreferenceRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value with every repository wired
//     to the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.VaultDB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Master:      NewMasterRepository(db, logger),
		Credentials: NewCredentialRepository(db, logger),
		Alerts:      NewAlertRepository(db, logger),
		History:     NewHistoryRepository(db, logger),
		Categories:  NewCategoryRepository(db, logger),
		Codes:       NewCodeRepository(db, logger),
		Preferences: NewPreferenceRepository(db, logger),
	}, nil
}
