package domain

import "context"

type UsersRepository interface {
	CreateUser(ctx context.Context, registration Registration) (Account, error)
	TryGetAccountByEmail(ctx context.Context, email string) (Account, bool, error)
	TryGetAccountByID(ctx context.Context, userID int) (Account, bool, error)
	UpdatePasswordHash(ctx context.Context, userID int, passwordHash string) error
}

// Registration is a validated sign-up with the password already hashed.
type Registration struct {
	Username     string
	Email        string
	PasswordHash string
	StartBalance int64
}

type Account struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	IsSuspended  bool
}
