package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (ur *UsersRepository) GetUser(ctx context.Context, userID int) (domain.User, error) {
	selectSQL := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.querier.QueryRow(ctx, selectSQL, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewNotFoundError(domain.EntityUser, userID)
		}

		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) SetUserSuspended(ctx context.Context, userID int, suspended bool) (domain.User, error) {
	updateSQL := `UPDATE users SET is_suspended = $2 WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(ur.querier.QueryRow(ctx, updateSQL, userID, suspended))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewNotFoundError(domain.EntityUser, userID)
		}

		return domain.User{}, fmt.Errorf("failed to set user suspension: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) UpdateBio(ctx context.Context, userID int, bio string) (domain.User, error) {
	updateSQL := `UPDATE users SET bio = $2 WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(ur.querier.QueryRow(ctx, updateSQL, userID, bio))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewNotFoundError(domain.EntityUser, userID)
		}

		return domain.User{}, fmt.Errorf("failed to update bio: %w", err)
	}

	return user, nil
}
