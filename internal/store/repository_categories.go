package store

import (
	"context"
	"fmt"

	"passvault/internal/logger"
)

// categoryRepository is the sqlite-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// Add inserts a category name via INSERT OR IGNORE; the unique constraint
// keeps the set free of duplicates without a separate existence check.
func (r *categoryRepository) Add(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertCategory, name); err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.Add").
			Str("category", name).
			Msg("failed to insert category")
		return fmt.Errorf("failed to insert category (name=%s): %w", name, err)
	}

	return nil
}

// List returns every category name.
func (r *categoryRepository) List(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.List").Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*categoryRepository.List").Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return names, nil
}
