package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"passvault/internal/logger"
	"passvault/models"
)

// credentialRepository is the sqlite-backed implementation of
// [CredentialRepository]. Password values never leave this layer decrypted;
// decryption belongs to the vault service above.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts a new credential row and returns its assigned id.
func (r *credentialRepository) Save(ctx context.Context, credential models.Credential) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertCredential,
		credential.Website,
		credential.Username,
		credential.Password,
		credential.Category,
		credential.CreatedAt,
		credential.ExpiryDate,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Save").
			Str("website", credential.Website).
			Msg("failed to insert credential")
		return 0, fmt.Errorf("failed to insert credential (website=%s): %w", credential.Website, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Save").Msg("failed to get inserted credential id")
		return 0, fmt.Errorf("failed to get inserted credential id: %w", err)
	}

	return id, nil
}

// Get returns a single credential by id, or [ErrNotFound].
func (r *credentialRepository) Get(ctx context.Context, id int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var item models.Credential
	err := r.db.QueryRowContext(ctx, selectCredential, id).Scan(
		&item.ID,
		&item.Website,
		&item.Username,
		&item.Password,
		&item.Category,
		&item.CreatedAt,
		&item.ExpiryDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Get").
			Int64("id", id).
			Msg("failed to query credential")
		return models.Credential{}, fmt.Errorf("failed to query credential (id=%d): %w", id, err)
	}

	return item, nil
}

// GetAll returns every stored credential with ciphertext passwords.
func (r *credentialRepository) GetAll(ctx context.Context) ([]models.Credential, error) {
	return r.queryCredentials(ctx, "*credentialRepository.GetAll", selectAllCredentials)
}

// ExportAll returns every stored credential ordered by website ascending.
func (r *credentialRepository) ExportAll(ctx context.Context) ([]models.Credential, error) {
	return r.queryCredentials(ctx, "*credentialRepository.ExportAll", exportAllCredentials)
}

// ByExpiryWindow returns credentials whose expiry date falls inside the
// named window relative to now. The predicate set varies per window, so the
// statement is built dynamically with squirrel.
func (r *credentialRepository) ByExpiryWindow(ctx context.Context, window models.ExpiryWindow, now time.Time) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "website", "username", "encrypted_password", "category", "created_at", "expiry_date").
		From("stored_passwords").
		OrderBy("expiry_date ASC")

	switch window {
	case models.WindowAll:
		// no predicate
	case models.WindowExpired:
		builder = builder.Where(sq.Lt{"expiry_date": now})
	case models.Window7Days:
		builder = builder.Where(expiryBetween(now, 7))
	case models.Window14Days:
		builder = builder.Where(expiryBetween(now, 14))
	case models.Window30Days:
		builder = builder.Where(expiryBetween(now, 30))
	case models.Window60Days:
		builder = builder.Where(expiryBetween(now, 60))
	case models.Window90Days:
		builder = builder.Where(expiryBetween(now, 90))
	default:
		return nil, fmt.Errorf("unknown expiry window %q", window)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ByExpiryWindow").Msg("failed to build window query")
		return nil, fmt.Errorf("failed to build window query: %w", err)
	}

	return r.queryCredentials(ctx, "*credentialRepository.ByExpiryWindow", query, args...)
}

// expiryBetween selects rows expiring between now and now plus days.
func expiryBetween(now time.Time, days int) sq.Sqlizer {
	return sq.And{
		sq.GtOrEq{"expiry_date": now},
		sq.LtOrEq{"expiry_date": now.AddDate(0, 0, days)},
	}
}

// ActiveExpiring returns credentials expiring between from and to, excluding
// those whose most recent dismissal is at or after dismissCutoff. The caller
// computes dismissCutoff (now minus the remind-later window), keeping all
// clock arithmetic out of SQL and under test control.
func (r *credentialRepository) ActiveExpiring(ctx context.Context, from, to, dismissCutoff time.Time) ([]models.ExpiringCredential, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("sp.id", "sp.website", "sp.username", "sp.expiry_date").
		From("stored_passwords sp").
		LeftJoin("(SELECT password_id, MAX(dismissed_at) AS last_dismissed FROM dismissed_alerts GROUP BY password_id) da ON da.password_id = sp.id").
		Where(sq.GtOrEq{"sp.expiry_date": from}).
		Where(sq.LtOrEq{"sp.expiry_date": to}).
		Where(sq.Or{
			sq.Eq{"da.last_dismissed": nil},
			sq.Lt{"da.last_dismissed": dismissCutoff},
		}).
		OrderBy("sp.expiry_date ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ActiveExpiring").Msg("failed to build active expiring query")
		return nil, fmt.Errorf("failed to build active expiring query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ActiveExpiring").Msg("failed to query active expiring credentials")
		return nil, fmt.Errorf("failed to query active expiring credentials: %w", err)
	}
	defer rows.Close()

	var items []models.ExpiringCredential
	for rows.Next() {
		var item models.ExpiringCredential
		if err := rows.Scan(&item.ID, &item.Website, &item.Username, &item.ExpiryDate); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ActiveExpiring").Msg("failed to scan expiring credential row")
			return nil, fmt.Errorf("failed to scan expiring credential row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ActiveExpiring").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating expiring credential rows: %w", err)
	}

	return items, nil
}

// queryCredentials runs a SELECT producing full credential rows and scans
// them into a slice.
func (r *credentialRepository) queryCredentials(ctx context.Context, caller, query string, args ...any) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute credential query")
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}
	defer rows.Close()

	var items []models.Credential
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(
			&item.ID,
			&item.Website,
			&item.Username,
			&item.Password,
			&item.Category,
			&item.CreatedAt,
			&item.ExpiryDate,
		); err != nil {
			log.Err(err).Str("func", caller).Msg("failed to scan credential row")
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating credential rows: %w", err)
	}

	return items, nil
}
