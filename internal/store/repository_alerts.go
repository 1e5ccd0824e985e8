package store

import (
	"context"
	"fmt"
	"time"

	"passvault/internal/logger"
)

// alertRepository is the sqlite-backed implementation of [AlertRepository].
type alertRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAlertRepository constructs an [AlertRepository] backed by the provided
// database connection and logger.
func NewAlertRepository(db *DB, logger *logger.Logger) AlertRepository {
	logger.Debug().Msg("creating alert repository")
	return &alertRepository{
		db:     db,
		logger: logger,
	}
}

// Dismiss appends one ledger row. Re-dismissing the same credential inserts
// again; visibility queries only look at the latest dismissal.
func (r *alertRepository) Dismiss(ctx context.Context, credentialID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertDismissedAlert, credentialID, at); err != nil {
		log.Err(err).
			Str("func", "*alertRepository.Dismiss").
			Int64("password_id", credentialID).
			Msg("failed to insert dismissed alert")
		return fmt.Errorf("failed to insert dismissed alert (password_id=%d): %w", credentialID, err)
	}

	return nil
}

// ResetAll clears the ledger so every alert resurfaces immediately.
func (r *alertRepository) ResetAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllDismissedAlerts); err != nil {
		log.Err(err).Str("func", "*alertRepository.ResetAll").Msg("failed to clear dismissed alerts")
		return fmt.Errorf("failed to clear dismissed alerts: %w", err)
	}

	return nil
}
