package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type UsersRepository interface {
	GetUser(ctx context.Context, userID int) (User, error)
	SetUserSuspended(ctx context.Context, userID int, suspended bool) (User, error)
	UpdateBio(ctx context.Context, userID int, bio string) (User, error)
}

// MaxBioLength is counted in runes.
const MaxBioLength = 500

type UserLocker interface {
	LockUsers(ctx context.Context, querier database.Querier, userIDs ...int) (map[int]User, error)
}

type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	Balance     int64     `json:"balance"`
	IsAdmin     bool      `json:"isAdmin"`
	IsSuspended bool      `json:"isSuspended"`
	ReportCount int       `json:"reportCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Profile struct {
	User      User    `json:"user"`
	Purchases []Order `json:"purchases"`
	Sales     []Order `json:"sales"`
}
