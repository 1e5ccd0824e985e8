package store

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/logger"
)

func TestPreferenceRepository_Set(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPreferenceRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(upsertPreference)).
		WithArgs("tooltips_enabled", "0").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(testContext(), "tooltips_enabled", "0"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPreferenceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
			WithArgs("tooltips_enabled").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		got, err := repo.Get(testContext(), "tooltips_enabled")
		require.NoError(t, err)
		assert.Equal(t, "1", got)
	})

	t.Run("error: unset key returns ErrNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPreferenceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
			WithArgs("unknown_key").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(testContext(), "unknown_key")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
