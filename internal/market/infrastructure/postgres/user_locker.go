package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type UserLocker struct {
}

func NewUserLocker() *UserLocker {
	return &UserLocker{}
}

// LockUsers takes row locks on the given users in id order and returns the rows that exist.
func (ul *UserLocker) LockUsers(ctx context.Context, querier database.Querier, userIDs ...int) (map[int]domain.User, error) {
	lockUsersSQL := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := querier.Query(ctx, lockUsersSQL, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}
	defer rows.Close()

	users := make(map[int]domain.User, len(userIDs))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		users[user.ID] = user
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}

	return users, nil
}
