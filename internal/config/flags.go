package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d vault database file path
//	-k key material file path
//	-c/-config json file path with configs
//	-mail-url mail API base URL
//	-mail-token mail API token
//	-mail-sender mail From address
//	-mail-timeout mail request timeout (e.g., "15s")
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-window session inactivity window (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var dbPath string
	var keyFilePath string
	var jsonConfigPath string
	var mailBaseURL string
	var mailAPIToken string
	var mailSender string
	var mailTimeout time.Duration
	var sessionSignKey string
	var sessionIssuer string
	var sessionWindow time.Duration

	flag.StringVar(&dbPath, "d", "", "Vault database file path")
	flag.StringVar(&keyFilePath, "k", "", "Key material file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&mailBaseURL, "mail-url", "", "Mail API base URL")
	flag.StringVar(&mailAPIToken, "mail-token", "", "Mail API token")
	flag.StringVar(&mailSender, "mail-sender", "", "Mail From address")
	flag.DurationVar(&mailTimeout, "mail-timeout", 0, "Mail request timeout (e.g., 15s)")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	flag.DurationVar(&sessionWindow, "session-window", 0, "Session inactivity window (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			DB:          VaultDB{Path: dbPath},
			KeyFilePath: keyFilePath,
		},
		Mail: Mail{
			BaseURL:        mailBaseURL,
			APIToken:       mailAPIToken,
			Sender:         mailSender,
			RequestTimeout: mailTimeout,
		},
		Session: Session{
			SignKey:          sessionSignKey,
			Issuer:           sessionIssuer,
			InactivityWindow: sessionWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}
