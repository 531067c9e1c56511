package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// SchemaStatements creates every table the application needs. Each statement is idempotent.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title        TEXT NOT NULL CHECK (title <> ''),
		author       TEXT NOT NULL CHECK (author <> ''),
		pages_total  INTEGER NOT NULL CHECK (pages_total >= 1),
		pages_read   INTEGER NOT NULL DEFAULT 0 CHECK (pages_read >= 0),
		status       TEXT NOT NULL DEFAULT 'Want to read',
		format       TEXT NOT NULL DEFAULT 'Print',
		price        NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		suggested_by TEXT NOT NULL DEFAULT '',
		finished     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_title ON books (title)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_books (
		id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name      TEXT NOT NULL,
		author    TEXT NOT NULL,
		category  TEXT NOT NULL,
		published DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_books_published ON catalog_books (published DESC)`,
}

// EnsureSchema applies SchemaStatements through the pgx pool.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	return applySchemaPool(ctx, db.Pool)
}

func applySchemaPool(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range SchemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	log.Info().Int("statements", len(SchemaStatements)).Msg("[DATABASE] Schema ensured")
	return nil
}

// EnsureSchemaSQL applies SchemaStatements through database/sql.
func EnsureSchemaSQL(ctx context.Context, db *sql.DB) error {
	for i, stmt := range SchemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	log.Info().Int("statements", len(SchemaStatements)).Msg("[DATABASE] Schema ensured")
	return nil
}
