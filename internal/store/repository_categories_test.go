package store

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/logger"
)

func TestCategoryRepository_Add(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

	// duplicate insert is a no-op thanks to INSERT OR IGNORE
	mock.ExpectExec(regexp.QuoteMeta(insertCategory)).
		WithArgs("Banking").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertCategory)).
		WithArgs("Banking").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Add(testContext(), "Banking"))
	require.NoError(t, repo.Add(testContext(), "Banking"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectCategories)).
		WillReturnRows(sqlmock.NewRows([]string{"category_name"}).
			AddRow("Work").
			AddRow("Personal").
			AddRow("Banking"))

	got, err := repo.List(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Personal", "Banking"}, got)
}
