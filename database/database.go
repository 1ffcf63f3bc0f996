package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database handle with additional functionality
type DB struct {
	*bun.DB
}

// Connect opens the Postgres connection pool with the configured driver and verifies it
func Connect(ctx context.Context, dbCfg *structs.DatabaseConfig, logger *gecho.Logger) (*DB, error) {
	sqldb, err := openSQL(dbCfg)
	if err != nil {
		return nil, err
	}

	// Apply pool settings from configuration
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(&connectionHealthHook{logger: logger})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully", gecho.Field("driver", dbCfg.Driver))

	return &DB{db}, nil
}

func dsn(dbCfg *structs.DatabaseConfig) string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbCfg.User, dbCfg.Password),
		Host:     fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port),
		Path:     "/" + dbCfg.Name,
		RawQuery: url.Values{"sslmode": []string{dbCfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func openSQL(dbCfg *structs.DatabaseConfig) (*sql.DB, error) {
	switch dbCfg.Driver {
	case "pgx":
		connCfg, err := pgx.ParseConfig(dsn(dbCfg))
		if err != nil {
			return nil, fmt.Errorf("invalid database configuration: %w", err)
		}
		return stdlib.OpenDB(*connCfg), nil
	case "pgdriver", "":
		connector := pgdriver.NewConnector(
			pgdriver.WithDSN(dsn(dbCfg)),
			pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
			pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
		)
		return sql.OpenDB(connector), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", dbCfg.Driver)
	}
}

// Health checks the database connection health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// connectionHealthHook implements bun.QueryHook to monitor slow and dropped queries
type connectionHealthHook struct {
	logger *gecho.Logger
}

func (h *connectionHealthHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *connectionHealthHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	// Log slow queries (over 1 second)
	if duration := time.Since(event.StartTime); duration > 1*time.Second {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}

	if event.Err != nil {
		if event.Err.Error() == "EOF" || event.Err.Error() == "unexpected EOF" {
			h.logger.Error("Database connection EOF error - connection may have been closed by server",
				gecho.Field("error", event.Err),
				gecho.Field("query", event.Query),
			)
		}
	}
}
