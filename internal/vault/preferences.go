package vault

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/store"
)

// tooltipPreferenceKey is the user_preferences row holding the tooltip
// toggle.
const tooltipPreferenceKey = "tooltips_enabled"

// SetPreference stores a non-security UI setting.
func (v *Vault) SetPreference(ctx context.Context, key, value string) error {
	if err := v.storages.Preferences.Set(ctx, key, value); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

// Preference returns the stored value for key, or [store.ErrNotFound].
func (v *Vault) Preference(ctx context.Context, key string) (string, error) {
	return v.storages.Preferences.Get(ctx, key)
}

// SetTooltipPreference persists whether the shell shows tooltips.
func (v *Vault) SetTooltipPreference(ctx context.Context, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	return v.SetPreference(ctx, tooltipPreferenceKey, value)
}

// TooltipPreference reports whether tooltips are enabled, defaulting to
// true when no preference has been stored yet.
func (v *Vault) TooltipPreference(ctx context.Context) (bool, error) {
	value, err := v.Preference(ctx, tooltipPreferenceKey)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return value == "1", nil
}
