package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{
			name: "nil error",
			err:  nil,
			want: NonRetryable,
		},
		{
			name: "busy is retryable",
			err:  sqlite3.Error{Code: sqlite3.ErrBusy},
			want: Retryable,
		},
		{
			name: "locked is retryable",
			err:  sqlite3.Error{Code: sqlite3.ErrLocked},
			want: Retryable,
		},
		{
			name: "wrapped busy is retryable",
			err:  fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrBusy}),
			want: Retryable,
		},
		{
			name: "constraint violation is not retryable",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint},
			want: NonRetryable,
		},
		{
			name: "non-sqlite error is not retryable",
			err:  errors.New("connection refused"),
			want: NonRetryable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(tc.err))
		})
	}
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, isConstraintViolation(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.True(t, isConstraintViolation(fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint})))
	assert.False(t, isConstraintViolation(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.False(t, isConstraintViolation(errors.New("plain error")))
	assert.False(t, isConstraintViolation(nil))
}
