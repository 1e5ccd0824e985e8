package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid local storage settings
	// (for example, an empty database path or key file path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, a zero inactivity window).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
