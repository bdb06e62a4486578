package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
)

const tokenTimeLimit = 7 * 24 * time.Hour

type Authenticator struct {
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	secretKey       []byte
	startBalance    int64
}

func NewAuthenticator(
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
	startBalance int64,
) *Authenticator {
	return &Authenticator{
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		secretKey:       []byte(secretKey),
		startBalance:    startBalance,
	}
}

func (a *Authenticator) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if err := domain.ValidateRegistration(username, email, password); err != nil {
		return domain.Account{}, err
	}

	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return a.usersRepository.CreateUser(ctx, domain.Registration{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		StartBalance: a.startBalance,
	})
}

// Login checks the credentials and returns a signed token. Suspended accounts are refused
// only after the password matched.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	account, found, err := a.usersRepository.TryGetAccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.UserNotFoundError{Msg: fmt.Sprintf("user with email %s not found", email)}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "email or password is incorrect"}
	}

	if account.IsSuspended {
		return "", &domain.UserSuspendedError{Msg: "account is suspended"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, account.ID, account.Email, tokenTimeLimit)
}

// ChangePassword replaces the password after re-checking the current one. Issued tokens stay valid.
func (a *Authenticator) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return &domain.InvalidArgumentsError{Msg: "current and new password are required"}
	}

	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	account, found, err := a.usersRepository.TryGetAccountByID(ctx, userID)
	if err != nil {
		return err
	}

	if !found {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	valid, err := a.passwordHasher.VerifyPassword(currentPassword, account.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.InvalidArgumentsError{Msg: "current password is incorrect"}
	}

	hashedPassword, err := a.passwordHasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.usersRepository.UpdatePasswordHash(ctx, userID, hashedPassword)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
