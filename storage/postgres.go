package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"revorz_storefront/database"
	"revorz_storefront/structs/tables"
	"time"
)

// PostgresBackend keeps persistent values in the storefront_values table.
// Values never expire; it is not meant for the session scope.
type PostgresBackend struct {
	db *database.DB
}

func NewPostgresBackend(db *database.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var row tables.StoredValue

	err := database.WithRetry(ctx, func() error {
		return p.db.NewSelect().
			Model(&row).
			Where("sv.namespace = ?", namespace).
			Where("sv.key = ?", key).
			Limit(1).
			Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to select stored value: %w", err)
	}

	return row.Value, true, nil
}

func (p *PostgresBackend) Set(ctx context.Context, namespace, key, value string) error {
	row := &tables.StoredValue{
		Namespace: namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := database.WithRetry(ctx, func() error {
		_, err := p.db.NewInsert().
			Model(row).
			On("CONFLICT (namespace, key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert stored value: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Remove(ctx context.Context, namespace, key string) error {
	err := database.WithRetry(ctx, func() error {
		_, err := p.db.NewDelete().
			Model((*tables.StoredValue)(nil)).
			Where("namespace = ?", namespace).
			Where("key = ?", key).
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete stored value: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Ping(ctx context.Context) error {
	return p.db.Health(ctx)
}
