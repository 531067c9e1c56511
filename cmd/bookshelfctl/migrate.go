package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf-backend/internal/infrastructure/database"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables and indexes if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.timeoutContext()
			defer cancel()

			db, err := opts.openSQL(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.EnsureSchemaSQL(ctx, db); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%d statements applied).\n", len(database.SchemaStatements))
			return nil
		},
	}
}
