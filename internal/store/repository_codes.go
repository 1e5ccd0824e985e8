package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"passvault/internal/logger"
	"passvault/models"
)

// codeRepository is the sqlite-backed implementation of [CodeRepository].
// The email column is the primary key, so INSERT OR REPLACE gives the
// one-active-code-per-address semantics for free.
type codeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCodeRepository constructs a [CodeRepository] backed by the provided
// database connection and logger.
func NewCodeRepository(db *DB, logger *logger.Logger) CodeRepository {
	logger.Debug().Msg("creating verification code repository")
	return &codeRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts or replaces the verification code for its email address.
func (r *codeRepository) Upsert(ctx context.Context, code models.VerificationCode) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertVerificationCode, code.Email, code.Code, code.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*codeRepository.Upsert").
			Str("email", code.Email).
			Msg("failed to upsert verification code")
		return fmt.Errorf("failed to upsert verification code: %w", err)
	}

	return nil
}

// Get returns the stored code for email, or [ErrCodeNotFound].
func (r *codeRepository) Get(ctx context.Context, email string) (models.VerificationCode, error) {
	log := logger.FromContext(ctx)

	var code models.VerificationCode
	err := r.db.QueryRowContext(ctx, selectVerificationCode, email).Scan(&code.Email, &code.Code, &code.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VerificationCode{}, ErrCodeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*codeRepository.Get").
			Str("email", email).
			Msg("failed to query verification code")
		return models.VerificationCode{}, fmt.Errorf("failed to query verification code: %w", err)
	}

	return code, nil
}

// Delete removes the stored code for email. Deleting a missing code is not
// an error.
func (r *codeRepository) Delete(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteVerificationCode, email); err != nil {
		log.Err(err).
			Str("func", "*codeRepository.Delete").
			Str("email", email).
			Msg("failed to delete verification code")
		return fmt.Errorf("failed to delete verification code: %w", err)
	}

	return nil
}
