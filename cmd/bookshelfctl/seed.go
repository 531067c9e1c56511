package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogRepo "bookshelf-backend/internal/domains/catalog/repository"
	catalogService "bookshelf-backend/internal/domains/catalog/service"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo catalog when it is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.timeoutContext()
			defer cancel()

			db, err := opts.openSQL(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := catalogService.NewService(catalogRepo.NewSQLRepository(db), catalogService.Options{})
			n, err := svc.SeedIfEmpty(ctx)
			if err != nil {
				return err
			}

			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog already contains data; skipping seeding.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded catalog with %d books.\n", n)
			return nil
		},
	}
}
