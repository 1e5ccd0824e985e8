// Package app ties the vault engine to the desktop shell: unlocking with the
// master password, generating passwords into the history, and pushing secrets
// to the system clipboard. The shell calls these methods; everything below
// them lives in the vault, policy and session packages.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"passvault/internal/logger"
	"passvault/internal/policy"
	"passvault/internal/session"
	"passvault/internal/vault"
)

// ErrLocked is returned when an operation requires an unlocked vault but the
// session token is missing or lapsed.
var ErrLocked = errors.New("vault is locked")

// App is the desktop application facade.
type App struct {
	vault    *vault.Vault
	sessions *session.Manager
	logger   *logger.Logger

	// token holds the current session token; empty while locked.
	token string
}

// New creates the application facade. The vault starts locked.
func New(v *vault.Vault, sessions *session.Manager, log *logger.Logger) *App {
	return &App{
		vault:    v,
		sessions: sessions,
		logger:   log,
	}
}

// Unlock verifies the master password and starts an inactivity session.
// A wrong password returns [vault.ErrAuth].
func (a *App) Unlock(ctx context.Context, masterPassword string) error {
	ok, err := a.vault.VerifyMasterPassword(ctx, masterPassword)
	if err != nil {
		return fmt.Errorf("verify master password: %w", err)
	}
	if !ok {
		return vault.ErrAuth
	}

	token, err := a.sessions.Issue()
	if err != nil {
		return fmt.Errorf("issue session: %w", err)
	}
	a.token = token

	a.logger.Info().Str("func", "Unlock").Msg("vault unlocked")
	return nil
}

// Lock drops the current session immediately.
func (a *App) Lock() {
	a.token = ""
	a.logger.Info().Str("func", "Lock").Msg("vault locked")
}

// Touch restarts the inactivity window. The shell calls it on user activity;
// a lapsed window locks the vault and returns [ErrLocked].
func (a *App) Touch() error {
	if a.token == "" {
		return ErrLocked
	}

	refreshed, err := a.sessions.Refresh(a.token)
	if err != nil {
		a.token = ""
		if errors.Is(err, session.ErrSessionExpired) {
			return ErrLocked
		}
		return fmt.Errorf("refresh session: %w", err)
	}

	a.token = refreshed
	return nil
}

// Locked reports whether the vault currently requires the master password.
func (a *App) Locked() bool {
	if a.token == "" {
		return true
	}
	if err := a.sessions.Validate(a.token); err != nil {
		a.token = ""
		return true
	}
	return false
}

// GeneratePassword produces a password from the given character-set toggles
// and records it in the generation history so it can be recovered later.
func (a *App) GeneratePassword(ctx context.Context, length int, useUpper, useLower, useDigits, useSymbols bool) (string, error) {
	if a.Locked() {
		return "", ErrLocked
	}

	var alphabet string
	if useUpper {
		alphabet += policy.Uppercase
	}
	if useLower {
		alphabet += policy.Lowercase
	}
	if useDigits {
		alphabet += policy.Digits
	}
	if useSymbols {
		alphabet += policy.Symbols
	}

	password, err := policy.Generate(length, alphabet)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	if err = a.vault.RecordHistory(ctx, password); err != nil {
		return "", fmt.Errorf("record generated password: %w", err)
	}

	return password, nil
}

// CopyToClipboard places text on the system clipboard.
func (a *App) CopyToClipboard(text string) error {
	if a.Locked() {
		return ErrLocked
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
