// Package session implements the auto-lock gate of the desktop shell: after
// a successful master-password check the shell holds a short-lived signed
// token, refreshed on user activity. When the token lapses the vault locks
// and the shell must prompt for the master password again.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passvault/internal/config"
)

var (
	// ErrSessionExpired is returned by [Manager.Validate] when the token's
	// inactivity window has lapsed.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidSession is returned for tokens that fail signature, issuer
	// or structural checks.
	ErrInvalidSession = errors.New("invalid session token")
)

// Manager issues and validates the inactivity-bounded session tokens.
type Manager struct {
	signKey string
	issuer  string
	window  time.Duration

	// now is the clock source; replaced in tests.
	now func() time.Time
}

// NewManager constructs a [Manager] from the session configuration.
func NewManager(cfg config.Session) *Manager {
	return &Manager{
		signKey: cfg.SignKey,
		issuer:  cfg.Issuer,
		window:  cfg.InactivityWindow,
		now:     time.Now,
	}
}

// Issue creates a signed HMAC-SHA256 token valid for one inactivity window
// from now. Each token carries a fresh uuid as its "jti" claim so that two
// unlocks in the same second remain distinguishable in logs.
func (m *Manager) Issue() (string, error) {
	now := m.now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.window)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.signKey))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// Validate checks the token signature, issuer and expiry.
// Returns [ErrSessionExpired] for a lapsed token and [ErrInvalidSession]
// for anything else that fails verification.
func (m *Manager) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(m.signKey), nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrSessionExpired
		}
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !token.Valid {
		return ErrInvalidSession
	}

	return nil
}

// Refresh re-issues a token when the presented one is still valid,
// restarting the inactivity window. Called by the shell on user activity.
func (m *Manager) Refresh(tokenString string) (string, error) {
	if err := m.Validate(tokenString); err != nil {
		return "", err
	}
	return m.Issue()
}
