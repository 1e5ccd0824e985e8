package main

import (
	"context"
	"fmt"

	"passvault/internal/app"
	"passvault/internal/config"
	"passvault/internal/crypto"
	"passvault/internal/logger"
	"passvault/internal/notify"
	"passvault/internal/reset"
	"passvault/internal/session"
	"passvault/internal/store"
	"passvault/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDesktopLogger("passvault")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Vault.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	keyBox := crypto.NewKeyBox(cfg.Vault.KeyFilePath, log)
	hasher := crypto.NewMasterHasher()

	mailer := notify.NewMailer(cfg.Mail, log)
	resetFlow := reset.NewFlow(storages.Codes, mailer, log)

	v, err := vault.New(storages, keyBox, hasher, resetFlow, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open vault")
	}

	sessions := session.NewManager(cfg.Session)
	desktop := app.New(v, sessions, log)

	// The graphical shell is a separate binary; this entrypoint brings the
	// engine up, reports its state and leaves the facade ready for embedding.
	if err = report(desktop, v); err != nil {
		log.Fatal().Err(err).Msg("vault run error")
	}
}

// report prints a short status line so running the binary standalone is a
// usable smoke check of the storage, key file and migrations.
func report(desktop *app.App, v *vault.Vault) error {
	ctx := context.Background()

	initialized, err := v.MasterPasswordExists(ctx)
	if err != nil {
		return fmt.Errorf("check master password: %w", err)
	}

	if !initialized {
		fmt.Println("Vault status: empty, master password not set")
		return nil
	}

	alerts, err := v.ActiveExpiring(ctx)
	if err != nil {
		return fmt.Errorf("check expiring credentials: %w", err)
	}

	fmt.Printf("Vault status: initialized, locked=%t, expiring credentials: %d\n",
		desktop.Locked(), len(alerts))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
