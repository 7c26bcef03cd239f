package user

import "context"

// Service manages customer accounts. Emails are matched case-insensitively
// and stored lower-cased.
type Service interface {
	// RegisterUser hashes password and creates the account, or returns
	// ErrEmailTaken when the email already exists.
	RegisterUser(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	// GetUserByEmail returns ErrNotFound for unknown emails.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
