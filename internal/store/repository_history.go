package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"passvault/internal/logger"
	"passvault/models"
)

// historyRepository is the sqlite-backed implementation of
// [HistoryRepository]. The ledger is append-only and unbounded; rows hold
// ciphertext only.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Append records one generated password.
func (r *historyRepository) Append(ctx context.Context, encryptedPassword string, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertHistoryEntry, encryptedPassword, at); err != nil {
		log.Err(err).Str("func", "*historyRepository.Append").Msg("failed to insert history entry")
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// List returns history entries newest first. A limit of zero or less means
// no cap; the LIMIT clause is added dynamically, so the statement is built
// with squirrel.
func (r *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "encrypted_password", "created_at").
		From("password_history").
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("failed to build history query")
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("failed to query history entries")
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var items []models.HistoryEntry
	for rows.Next() {
		var item models.HistoryEntry
		if err := rows.Scan(&item.ID, &item.Password, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.List").Msg("failed to scan history row")
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return items, nil
}
