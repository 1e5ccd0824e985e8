package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/config"
)

func newTestManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()

	m := NewManager(config.Session{
		SignKey:          "test-sign-key",
		Issuer:           "passvault",
		InactivityWindow: 5 * time.Minute,
	})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	return m, &now
}

func TestManager_IssueAndValidate(t *testing.T) {
	m, _ := newTestManager(t)

	token, err := m.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, m.Validate(token))
}

func TestManager_Issue_UniqueTokenIDs(t *testing.T) {
	m, _ := newTestManager(t)

	first, err := m.Issue()
	require.NoError(t, err)
	second, err := m.Issue()
	require.NoError(t, err)

	// same claims and clock, but a fresh jti keeps the tokens distinct
	assert.NotEqual(t, first, second)
}

func TestManager_Validate_Expired(t *testing.T) {
	m, now := newTestManager(t)

	token, err := m.Issue()
	require.NoError(t, err)

	*now = now.Add(5*time.Minute + time.Second)
	assert.ErrorIs(t, m.Validate(token), ErrSessionExpired)
}

func TestManager_Validate_Invalid(t *testing.T) {
	m, _ := newTestManager(t)

	t.Run("garbage token", func(t *testing.T) {
		assert.ErrorIs(t, m.Validate("not-a-jwt"), ErrInvalidSession)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		other := NewManager(config.Session{
			SignKey:          "other-key",
			Issuer:           "passvault",
			InactivityWindow: 5 * time.Minute,
		})
		token, err := other.Issue()
		require.NoError(t, err)

		assert.ErrorIs(t, m.Validate(token), ErrInvalidSession)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewManager(config.Session{
			SignKey:          "test-sign-key",
			Issuer:           "someone-else",
			InactivityWindow: 5 * time.Minute,
		})
		token, err := other.Issue()
		require.NoError(t, err)

		assert.ErrorIs(t, m.Validate(token), ErrInvalidSession)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    "passvault",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		assert.ErrorIs(t, m.Validate(token), ErrInvalidSession)
	})
}

func TestManager_Refresh(t *testing.T) {
	m, now := newTestManager(t)

	token, err := m.Issue()
	require.NoError(t, err)

	// activity inside the window restarts it
	*now = now.Add(4 * time.Minute)
	refreshed, err := m.Refresh(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, refreshed)

	// the refreshed token is valid well past the original expiry
	*now = now.Add(4 * time.Minute)
	require.NoError(t, m.Validate(refreshed))

	// but a lapsed token cannot be refreshed
	*now = now.Add(2 * time.Minute)
	_, err = m.Refresh(refreshed)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
