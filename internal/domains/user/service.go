package user

import "context"

// Service is the account logic behind the register and login pages.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Authenticate(ctx context.Context, req LoginRequest) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
