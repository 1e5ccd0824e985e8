package vault

import (
	"context"
	"fmt"
)

// AddCategory inserts a new category name; adding an existing name is a
// no-op (unique-name invariant).
func (v *Vault) AddCategory(ctx context.Context, name string) error {
	if err := v.storages.Categories.Add(ctx, name); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

// Categories returns every category name, including the seeded defaults.
func (v *Vault) Categories(ctx context.Context) ([]string, error) {
	names, err := v.storages.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}
