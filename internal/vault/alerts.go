package vault

import (
	"context"
	"fmt"
	"time"

	"passvault/internal/logger"
	"passvault/models"
)

// DismissAlert records that the user acknowledged the expiry warning for
// credentialID. The ledger is append-only: dismissing again simply inserts
// another row, and visibility is decided by the latest one. A dismissal
// suppresses the alert for 24 hours, after which it resurfaces
// automatically ("remind me later" semantics).
func (v *Vault) DismissAlert(ctx context.Context, credentialID int64) error {
	log := logger.FromContext(ctx)

	if err := v.storages.Alerts.Dismiss(ctx, credentialID, v.now()); err != nil {
		return fmt.Errorf("dismiss alert: %w", err)
	}

	log.Debug().
		Str("func", "*Vault.DismissAlert").
		Int64("password_id", credentialID).
		Msg("expiry alert dismissed")
	return nil
}

// ActiveExpiring returns credentials expiring within the next 7 days whose
// alert has not been dismissed in the past 24 hours.
func (v *Vault) ActiveExpiring(ctx context.Context) ([]models.ExpiringCredential, error) {
	return v.ActiveExpiringWithin(ctx, alertWindowDays)
}

// ActiveExpiringWithin is [Vault.ActiveExpiring] with an explicit look-ahead
// window in days.
func (v *Vault) ActiveExpiringWithin(ctx context.Context, windowDays int) ([]models.ExpiringCredential, error) {
	now := v.now()
	from := now
	to := now.AddDate(0, 0, windowDays)
	cutoff := now.Add(-dismissSuppression)

	items, err := v.storages.Credentials.ActiveExpiring(ctx, from, to, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list active expiring credentials: %w", err)
	}

	return items, nil
}

// ByExpiryWindow returns credentials (decrypted) whose expiry date falls in
// the named filter window.
func (v *Vault) ByExpiryWindow(ctx context.Context, window models.ExpiryWindow) ([]models.Credential, error) {
	items, err := v.storages.Credentials.ByExpiryWindow(ctx, window, v.now())
	if err != nil {
		return nil, fmt.Errorf("filter credentials by window: %w", err)
	}

	v.decryptCredentials(ctx, items)
	return items, nil
}

// ResetDismissedAlerts clears the dismissal ledger so every expiry alert
// resurfaces immediately.
func (v *Vault) ResetDismissedAlerts(ctx context.Context) error {
	if err := v.storages.Alerts.ResetAll(ctx); err != nil {
		return fmt.Errorf("reset dismissed alerts: %w", err)
	}
	return nil
}

// Now exposes the vault clock; the expiry tracker uses it so severity
// calculations and SQL predicates share one time source.
func (v *Vault) Now() time.Time {
	return v.now()
}
