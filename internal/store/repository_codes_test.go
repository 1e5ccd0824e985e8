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
	"passvault/models"
)

func TestCodeRepository_Upsert(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	code := models.VerificationCode{Email: "user@example.com", Code: "042917", CreatedAt: at}

	t.Run("success: replaces existing code for the address", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCodeRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(upsertVerificationCode)).
			WithArgs("user@example.com", "042917", at).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Upsert(testContext(), code))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: exec fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCodeRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(upsertVerificationCode)).
			WithArgs("user@example.com", "042917", at).
			WillReturnError(errors.New("database is locked"))

		err := repo.Upsert(testContext(), code)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert verification code")
	})
}

func TestCodeRepository_Get(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCodeRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectVerificationCode)).
			WithArgs("user@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"email", "code", "created_at"}).
				AddRow("user@example.com", "042917", at))

		got, err := repo.Get(testContext(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "042917", got.Code)
		assert.Equal(t, at, got.CreatedAt)
	})

	t.Run("error: no code for address returns ErrCodeNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCodeRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectVerificationCode)).
			WithArgs("other@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"email", "code", "created_at"}))

		_, err := repo.Get(testContext(), "other@example.com")
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})
}

func TestCodeRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCodeRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteVerificationCode)).
		WithArgs("user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(testContext(), "user@example.com"))
	require.NoError(t, mock.ExpectationsWereMet())
}
