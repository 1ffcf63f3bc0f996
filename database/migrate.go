package database

import (
	"context"
	"fmt"
	"revorz_storefront/structs/tables"
)

// Migrate creates the tables used by the persistent store when they are missing
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.NewCreateTable().
		Model((*tables.StoredValue)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storefront_values table: %w", err)
	}
	return nil
}
