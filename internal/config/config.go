package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for passvault.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults (in that order of precedence).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the local storage settings: database file and key file.
	Vault Vault `envPrefix:"VAULT_"`

	// Mail holds the HTTP mail-API settings used to deliver reset codes.
	Mail Mail `envPrefix:"MAIL_"`

	// Session holds the auto-lock session token settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault groups the settings of the local persistence layer.
type Vault struct {
	// DB holds the vault database location.
	DB VaultDB `envPrefix:"DB_"`

	// KeyFilePath is where the raw symmetric key bytes live. The file is
	// created on first run; losing it permanently voids all stored secrets.
	// Env: VAULT_KEY_FILE
	KeyFilePath string `env:"KEY_FILE"`
}

// VaultDB holds the location of the local SQLite database file.
type VaultDB struct {
	// Path is the vault database file path (e.g. "passwords.db").
	// Env: VAULT_DB_PATH
	Path string `env:"PATH"`
}

// Mail holds the outbound mail-API settings used by the reset notifier.
type Mail struct {
	// BaseURL is the HTTP mail API endpoint (e.g. "https://api.mailer.example").
	// Env: MAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIToken authenticates requests against the mail API.
	// Env: MAIL_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Sender is the From address on reset-code messages.
	// Env: MAIL_SENDER
	Sender string `env:"SENDER"`

	// RequestTimeout bounds a single delivery attempt.
	// Env: MAIL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the settings for the auto-lock session tokens issued after
// a successful master-password check.
type Session struct {
	// SignKey is the secret key used to sign and verify session tokens.
	// Env: SESSION_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer is the "iss" claim embedded in every issued token.
	// Env: SESSION_ISSUER
	Issuer string `env:"ISSUER"`

	// InactivityWindow is how long a session stays valid without activity
	// before the vault locks itself (e.g. "5m").
	// Env: SESSION_INACTIVITY_WINDOW
	InactivityWindow time.Duration `env:"INACTIVITY_WINDOW"`
}

// GetConfig builds and validates the passvault configuration from all
// sources: environment variables take precedence over flags, flags over the
// optional JSON file, and the JSON file over built-in defaults.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the built-in fallback configuration for a fresh desktop
// install: everything lives next to the executable, sessions lock after
// five minutes of inactivity.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			DB:          VaultDB{Path: "passwords.db"},
			KeyFilePath: "encryption.key",
		},
		Mail: Mail{
			RequestTimeout: 15 * time.Second,
		},
		Session: Session{
			Issuer:           "passvault",
			InactivityWindow: 5 * time.Minute,
		},
	}
}
