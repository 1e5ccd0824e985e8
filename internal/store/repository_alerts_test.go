package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/logger"
)

func TestAlertRepository_Dismiss(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success: appends a ledger row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAlertRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(insertDismissedAlert)).
			WithArgs(int64(5), at).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Dismiss(testContext(), 5, at))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: re-dismissing inserts again", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAlertRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(insertDismissedAlert)).
			WithArgs(int64(5), at).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertDismissedAlert)).
			WithArgs(int64(5), at.Add(time.Hour)).
			WillReturnResult(sqlmock.NewResult(2, 1))

		require.NoError(t, repo.Dismiss(testContext(), 5, at))
		require.NoError(t, repo.Dismiss(testContext(), 5, at.Add(time.Hour)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: insert fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAlertRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(insertDismissedAlert)).
			WithArgs(int64(5), at).
			WillReturnError(errors.New("database is locked"))

		err := repo.Dismiss(testContext(), 5, at)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert dismissed alert")
	})
}

func TestAlertRepository_ResetAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAlertRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteAllDismissedAlerts)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.ResetAll(testContext()))
	require.NoError(t, mock.ExpectationsWereMet())
}
