package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users.
type Repository interface {
	// Create inserts u and sets its id. Returns ErrUsernameOrEmailTaken on a
	// unique violation.
	Create(ctx context.Context, u *User) error

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
