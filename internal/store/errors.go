package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMasterAlreadySet is returned when a second master-auth row is
	// inserted while one already exists. The fixed id=1 primary key makes
	// the database reject the insert, so even two racing processes cannot
	// both succeed.
	ErrMasterAlreadySet = errors.New("master password is already set")

	// ErrMasterNotSet is returned when an operation requires a master-auth
	// row and none exists yet.
	ErrMasterNotSet = errors.New("master password is not set")

	// ErrNotFound is returned when a query expected to match a row produces
	// an empty result set.
	ErrNotFound = errors.New("record was not found")

	// ErrCodeNotFound is returned when no verification code is stored for
	// the given email address.
	ErrCodeNotFound = errors.New("verification code was not found")
)
