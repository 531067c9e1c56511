package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameOrEmailTaken = errors.New("Username or email already exists")
)

// Service-level errors. Their messages are shown on the login and register
// pages as is.
var (
	ErrMissingFields     = errors.New("All fields are required")
	ErrPasswordMismatch  = errors.New("Passwords do not match")
	ErrIncorrectUsername = errors.New("Incorrect username.")
	ErrIncorrectPassword = errors.New("Incorrect password.")
	ErrTooManyAttempts   = errors.New("Too many login attempts, please try again later")
)

// IsFormError reports whether err carries a message meant for the user.
func IsFormError(err error) bool {
	for _, target := range []error{
		ErrUsernameOrEmailTaken,
		ErrMissingFields,
		ErrPasswordMismatch,
		ErrIncorrectUsername,
		ErrIncorrectPassword,
		ErrTooManyAttempts,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
