// Package expiry is a pure query layer over the vault: it derives alert
// severities and filtered credential views from expiry dates, writing
// nothing itself.
package expiry

import (
	"context"
	"time"

	"passvault/internal/logger"
	"passvault/internal/vault"
	"passvault/models"
)

// Tracker answers "what is about to expire and how urgently" on top of a
// [vault.Vault].
type Tracker struct {
	vault  *vault.Vault
	logger *logger.Logger
}

// NewTracker constructs a [Tracker] over the given vault.
func NewTracker(vault *vault.Vault, logger *logger.Logger) *Tracker {
	return &Tracker{
		vault:  vault,
		logger: logger,
	}
}

// ActiveExpiring returns the credentials expiring within the next 7 days
// whose alerts are not currently suppressed by a recent dismissal.
func (t *Tracker) ActiveExpiring(ctx context.Context) ([]models.ExpiringCredential, error) {
	return t.vault.ActiveExpiring(ctx)
}

// FilterByWindow returns decrypted credentials whose expiry date falls in
// the named window.
func (t *Tracker) FilterByWindow(ctx context.Context, window models.ExpiryWindow) ([]models.Credential, error) {
	return t.vault.ByExpiryWindow(ctx, window)
}

// SeverityOf classifies an expiry date against the vault clock.
func (t *Tracker) SeverityOf(expiryDate time.Time) models.Severity {
	return SeverityAt(expiryDate, t.vault.Now())
}

// SeverityAt buckets an expiry date by whole days remaining relative to now:
// already past → Critical, within 7 days → High, within 14 → Medium,
// within 30 → Low, otherwise Safe.
func SeverityAt(expiryDate, now time.Time) models.Severity {
	daysRemaining := int(expiryDate.Sub(now).Hours() / 24)
	if expiryDate.Before(now) {
		return models.SeverityCritical
	}

	switch {
	case daysRemaining <= 7:
		return models.SeverityHigh
	case daysRemaining <= 14:
		return models.SeverityMedium
	case daysRemaining <= 30:
		return models.SeverityLow
	default:
		return models.SeveritySafe
	}
}
