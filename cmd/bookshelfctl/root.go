package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/pkg/logger"
)

type rootOptions struct {
	databaseURL string
	timeout     time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "bookshelfctl",
		Short:        "Administer the bookshelf database",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init("development", "warn")
		},
	}

	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "",
		"PostgreSQL connection string (defaults to DATABASE_URL or the DB_* variables)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall command timeout")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newImportCmd(opts),
		newUserCmd(opts),
	)
	return cmd
}

// dbConfig resolves the connection settings, letting --database-url win.
func (o *rootOptions) dbConfig() (*database.DBConfig, error) {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	if o.databaseURL != "" {
		cfg.URL = o.databaseURL
	}
	return cfg, nil
}

func (o *rootOptions) timeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.timeout)
}

// openSQL connects through database/sql with the lib/pq driver.
func (o *rootOptions) openSQL(ctx context.Context) (*sql.DB, error) {
	cfg, err := o.dbConfig()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// openPool connects through pgxpool, with the same retry policy as the server.
func (o *rootOptions) openPool(ctx context.Context) (*database.PostgresDB, error) {
	cfg, err := o.dbConfig()
	if err != nil {
		return nil, err
	}

	db := database.NewPostgresDB(cfg)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
