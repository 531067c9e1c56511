package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/domains/user"
	userRepo "bookshelf-backend/internal/domains/user/repository"
	userService "bookshelf-backend/internal/domains/user/service"
	"bookshelf-backend/pkg/cache"
)

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage catalog accounts",
	}
	cmd.AddCommand(newUserCreateCmd(opts))
	return cmd
}

func newUserCreateCmd(opts *rootOptions) *cobra.Command {
	var req user.RegisterRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account, prompting for the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Password, err = readPassword("Password: "); err != nil {
				return err
			}
			if req.ConfirmPassword, err = readPassword("Confirm password: "); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := opts.timeoutContext()
			defer cancel()

			db, err := opts.openPool(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			store := cache.NewMemoryCache()
			svc := userService.NewUserService(userRepo.NewPostgresRepository(db.Pool, store), store, userService.Options{
				BcryptCost: cfg.Auth.BcryptCost,
			})

			u, err := svc.Register(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s).\n", u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(bytePassword), nil
}
