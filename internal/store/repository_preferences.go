package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"passvault/internal/logger"
)

// preferenceRepository is the sqlite-backed implementation of
// [PreferenceRepository]. It stores non-security UI settings (e.g. the
// tooltip toggle) as plain key-value text.
type preferenceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPreferenceRepository constructs a [PreferenceRepository] backed by the
// provided database connection and logger.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		db:     db,
		logger: logger,
	}
}

// Set inserts or replaces the value for key.
func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertPreference, key, value); err != nil {
		log.Err(err).
			Str("func", "*preferenceRepository.Set").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("failed to upsert preference (key=%s): %w", key, err)
	}

	return nil
}

// Get returns the value for key, or [ErrNotFound] when no preference has
// been stored yet.
func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, selectPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*preferenceRepository.Get").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("failed to query preference (key=%s): %w", key, err)
	}

	return value, nil
}
