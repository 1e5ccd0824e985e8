package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application relies on at startup. The mail group is
// deliberately optional: without it the reset flow still issues codes, it
// just cannot deliver them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.DB.Path == "" || cfg.Vault.KeyFilePath == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Session.InactivityWindow <= 0 || cfg.Session.Issuer == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
