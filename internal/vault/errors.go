package vault

import "errors"

var (
	// ErrAuth is returned when the entered master password does not match
	// the stored record. Always surfaced to the caller so the shell can
	// prompt again.
	ErrAuth = errors.New("invalid master password")

	// ErrMasterAlreadySet mirrors the store sentinel at the service
	// boundary: the vault is already initialised and a second
	// SetMasterPassword was attempted.
	ErrMasterAlreadySet = errors.New("master password is already set")
)
