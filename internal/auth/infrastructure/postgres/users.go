package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, registration domain.Registration) (domain.Account, error) {
	creationSQL := `INSERT INTO users (username, email, password_hash, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, is_suspended`

	var account domain.Account
	row := r.querier.QueryRow(ctx, creationSQL,
		registration.Username, registration.Email, registration.PasswordHash, registration.StartBalance)
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.IsSuspended)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Account{}, &domain.EmailTakenError{
				Msg: fmt.Sprintf("email %s is already registered", registration.Email),
			}
		}

		return domain.Account{}, fmt.Errorf("failed to create user: %w", err)
	}

	return account, nil
}

func (r *UsersRepository) TryGetAccountByEmail(ctx context.Context, email string) (domain.Account, bool, error) {
	return r.tryGetAccount(ctx, `email = $1`, email)
}

func (r *UsersRepository) TryGetAccountByID(ctx context.Context, userID int) (domain.Account, bool, error) {
	return r.tryGetAccount(ctx, `id = $1`, userID)
}

func (r *UsersRepository) UpdatePasswordHash(ctx context.Context, userID int, passwordHash string) error {
	updateSQL := `UPDATE users SET password_hash = $2 WHERE id = $1 RETURNING id`

	var updatedID int
	err := r.querier.QueryRow(ctx, updateSQL, userID, passwordHash).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (r *UsersRepository) tryGetAccount(ctx context.Context, condition string, arg any) (domain.Account, bool, error) {
	var account domain.Account
	querySQL := `SELECT id, username, email, password_hash, is_suspended FROM users WHERE ` + condition

	row := r.querier.QueryRow(ctx, querySQL, arg)
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.IsSuspended)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}

		return domain.Account{}, false, err
	}

	return account, true, nil
}
