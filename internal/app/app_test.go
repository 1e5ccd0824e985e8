package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/config"
	"passvault/internal/crypto"
	"passvault/internal/logger"
	"passvault/internal/session"
	"passvault/internal/store"
	"passvault/internal/vault"
)

type acceptAllVerifier struct{}

func (acceptAllVerifier) Verify(context.Context, string, string) error { return nil }

func newTestApp(t *testing.T) (*App, *vault.Vault) {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewStorages(config.VaultDB{Path: filepath.Join(dir, "passwords.db")}, logger.Nop())
	require.NoError(t, err)

	keyBox := crypto.NewKeyBox(filepath.Join(dir, "encryption.key"), logger.Nop())
	v, err := vault.New(storages, keyBox, crypto.NewMasterHasher(), acceptAllVerifier{}, logger.Nop())
	require.NoError(t, err)

	sessions := session.NewManager(config.Session{
		SignKey:          "test-sign-key",
		Issuer:           "passvault",
		InactivityWindow: time.Hour,
	})

	return New(v, sessions, logger.Nop()), v
}

func TestApp_UnlockLock(t *testing.T) {
	a, v := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, v.SetMasterPassword(ctx, "correct horse battery staple"))

	assert.True(t, a.Locked(), "starts locked")

	err := a.Unlock(ctx, "wrong password")
	assert.ErrorIs(t, err, vault.ErrAuth)
	assert.True(t, a.Locked())

	require.NoError(t, a.Unlock(ctx, "correct horse battery staple"))
	assert.False(t, a.Locked())

	require.NoError(t, a.Touch(), "activity refreshes the session")
	assert.False(t, a.Locked())

	a.Lock()
	assert.True(t, a.Locked())
	assert.ErrorIs(t, a.Touch(), ErrLocked)
}

func TestApp_GeneratePassword(t *testing.T) {
	a, v := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, v.SetMasterPassword(ctx, "master"))

	t.Run("error: locked vault refuses", func(t *testing.T) {
		_, err := a.GeneratePassword(ctx, 16, true, true, true, true)
		assert.ErrorIs(t, err, ErrLocked)
	})

	require.NoError(t, a.Unlock(ctx, "master"))

	t.Run("generates and records history", func(t *testing.T) {
		got, err := a.GeneratePassword(ctx, 16, true, true, true, false)
		require.NoError(t, err)
		assert.Len(t, got, 16)

		entries, err := v.History(ctx, 0, "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].Password)
		assert.Equal(t, got, *entries[0].Password)
	})

	t.Run("error: no character sets selected", func(t *testing.T) {
		_, err := a.GeneratePassword(ctx, 16, false, false, false, false)
		require.Error(t, err)
	})
}

func TestApp_CopyToClipboard_Locked(t *testing.T) {
	a, _ := newTestApp(t)

	assert.ErrorIs(t, a.CopyToClipboard("secret"), ErrLocked)
}
