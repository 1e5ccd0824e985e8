package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, "passwords.db", cfg.Vault.DB.Path)
	assert.Equal(t, "encryption.key", cfg.Vault.KeyFilePath)
	assert.Equal(t, 15*time.Second, cfg.Mail.RequestTimeout)
	assert.Equal(t, "passvault", cfg.Session.Issuer)
	assert.Equal(t, 5*time.Minute, cfg.Session.InactivityWindow)

	// the defaults alone form a valid configuration
	require.NoError(t, cfg.validate())
}

func TestBuilder_EarlierSourceWins(t *testing.T) {
	// mergo only fills zero fields, so the first config holding a value
	// keeps it against everything merged afterwards
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{DB: VaultDB{Path: "/env/passwords.db"}}},
		&StructuredConfig{Vault: Vault{DB: VaultDB{Path: "/flag/passwords.db"}, KeyFilePath: "/flag/encryption.key"}},
		defaults(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/env/passwords.db", cfg.Vault.DB.Path, "env beats flags")
	assert.Equal(t, "/flag/encryption.key", cfg.Vault.KeyFilePath, "flags beat defaults")
	assert.Equal(t, "passvault", cfg.Session.Issuer, "defaults fill the rest")
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaults())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "passwords.db", cfg.Vault.DB.Path)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("VAULT_DB_PATH", "/data/passwords.db")
	t.Setenv("VAULT_KEY_FILE", "/data/encryption.key")
	t.Setenv("MAIL_BASE_URL", "https://api.mailer.example")
	t.Setenv("SESSION_INACTIVITY_WINDOW", "10m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/data/passwords.db", cfg.Vault.DB.Path)
	assert.Equal(t, "/data/encryption.key", cfg.Vault.KeyFilePath)
	assert.Equal(t, "https://api.mailer.example", cfg.Mail.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.Session.InactivityWindow)
}

func TestParseJSON(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"vault": {
				"db": {"path": "/json/passwords.db"},
				"key_file": "/json/encryption.key"
			},
			"mail": {
				"base_url": "https://api.mailer.example",
				"api_token": "secret-token",
				"sender": "noreply@example.com",
				"request_timeout": "30s"
			},
			"session": {
				"sign_key": "json-sign-key",
				"issuer": "passvault",
				"inactivity_window": "2m"
			}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, "/json/passwords.db", cfg.Vault.DB.Path)
		assert.Equal(t, "/json/encryption.key", cfg.Vault.KeyFilePath)
		assert.Equal(t, "secret-token", cfg.Mail.APIToken)
		assert.Equal(t, 30*time.Second, cfg.Mail.RequestTimeout)
		assert.Equal(t, "json-sign-key", cfg.Session.SignKey)
		assert.Equal(t, 2*time.Minute, cfg.Session.InactivityWindow)
	})

	t.Run("error: missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("error: malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := parseJSON(path)
		require.Error(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", raw: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", raw: `5000000000`, want: 5 * time.Second},
		{name: "error: bad string", raw: `"eventually"`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tc.raw))

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, time.Duration(d))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			Vault:   Vault{DB: VaultDB{Path: "passwords.db"}, KeyFilePath: "encryption.key"},
			Session: Session{Issuer: "passvault", InactivityWindow: 5 * time.Minute},
		}
	}

	t.Run("valid without mail settings", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("error: missing db path", func(t *testing.T) {
		cfg := valid()
		cfg.Vault.DB.Path = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidVaultConfigs)
	})

	t.Run("error: missing key file", func(t *testing.T) {
		cfg := valid()
		cfg.Vault.KeyFilePath = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidVaultConfigs)
	})

	t.Run("error: zero inactivity window", func(t *testing.T) {
		cfg := valid()
		cfg.Session.InactivityWindow = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
	})

	t.Run("error: missing issuer", func(t *testing.T) {
		cfg := valid()
		cfg.Session.Issuer = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
	})
}
