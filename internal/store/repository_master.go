package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"passvault/internal/logger"
)

// masterRepository is the sqlite-backed implementation of
// [MasterRepository]. It owns the "master_auth" and "master_email" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type masterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMasterRepository constructs a [MasterRepository] backed by the provided
// database connection and logger.
func NewMasterRepository(db *DB, logger *logger.Logger) MasterRepository {
	logger.Debug().Msg("creating master repository")
	return &masterRepository{
		db:     db,
		logger: logger,
	}
}

// SetMasterPassword inserts the singleton master-auth row.
//
// Error handling:
//   - sqlite constraint violation on the fixed id → [ErrMasterAlreadySet].
//     Because the uniqueness lives in the schema, two processes racing on
//     first-run setup cannot both succeed.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *masterRepository) SetMasterPassword(ctx context.Context, encryptedHash string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertMasterAuth, encryptedHash)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrMasterAlreadySet
		}
		log.Err(err).Str("func", "*masterRepository.SetMasterPassword").Msg("failed to insert master auth row")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// MasterPasswordHash returns the stored encrypted hash, or [ErrMasterNotSet]
// when the vault has not been initialised yet.
func (r *masterRepository) MasterPasswordHash(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var encryptedHash string
	err := r.db.QueryRowContext(ctx, selectMasterAuth).Scan(&encryptedHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMasterNotSet
	}
	if err != nil {
		log.Err(err).Str("func", "*masterRepository.MasterPasswordHash").Msg("failed to query master auth row")
		return "", fmt.Errorf("failed to query master auth: %w", err)
	}

	return encryptedHash, nil
}

// MasterPasswordExists reports whether a master-auth row is present.
func (r *masterRepository) MasterPasswordExists(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countMasterAuth).Scan(&count); err != nil {
		log.Err(err).Str("func", "*masterRepository.MasterPasswordExists").Msg("failed to count master auth rows")
		return false, fmt.Errorf("failed to count master auth rows: %w", err)
	}

	return count > 0, nil
}

// DeleteMasterPassword removes the master-auth row. Deleting an already
// empty table is not an error: the vault simply stays uninitialised.
func (r *masterRepository) DeleteMasterPassword(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteMasterAuth); err != nil {
		log.Err(err).Str("func", "*masterRepository.DeleteMasterPassword").Msg("failed to delete master auth row")
		return fmt.Errorf("failed to delete master auth: %w", err)
	}

	return nil
}

// SetMasterEmail stores the recovery address via INSERT OR IGNORE; the
// unique constraint keeps the first stored address immutable.
func (r *masterRepository) SetMasterEmail(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertMasterEmail, email); err != nil {
		log.Err(err).Str("func", "*masterRepository.SetMasterEmail").Msg("failed to insert master email")
		return fmt.Errorf("failed to insert master email: %w", err)
	}

	return nil
}

// MasterEmail returns the stored recovery address or [ErrNotFound].
func (r *masterRepository) MasterEmail(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var email string
	err := r.db.QueryRowContext(ctx, selectMasterEmail).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*masterRepository.MasterEmail").Msg("failed to query master email")
		return "", fmt.Errorf("failed to query master email: %w", err)
	}

	return email, nil
}

// MasterEmailExists reports whether a recovery address is stored.
func (r *masterRepository) MasterEmailExists(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countMasterEmail).Scan(&count); err != nil {
		log.Err(err).Str("func", "*masterRepository.MasterEmailExists").Msg("failed to count master email rows")
		return false, fmt.Errorf("failed to count master email rows: %w", err)
	}

	return count > 0, nil
}
