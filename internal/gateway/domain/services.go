package domain

import (
	"context"

	authdomain "github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (authdomain.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
}

// IdentityStore reloads the token owner on every authenticated request.
type IdentityStore interface {
	GetUser(ctx context.Context, userID int) (marketdomain.User, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int) (marketdomain.Profile, error)
	UpdateBio(ctx context.Context, userID int, bio string) (marketdomain.User, error)
}

type ProductsService interface {
	CreateProduct(ctx context.Context, sellerID int, title, description string, price int64, imageUrl string) (marketdomain.Product, error)
	ListProducts(ctx context.Context, search string) ([]marketdomain.Product, error)
	ListSellerProducts(ctx context.Context, sellerID int) ([]marketdomain.Product, error)
	GetProduct(ctx context.Context, productID int) (marketdomain.Product, error)
	UpdateProduct(ctx context.Context, actorID int, productID int, patch marketdomain.ProductPatch) (marketdomain.Product, error)
	DeleteProduct(ctx context.Context, actorID int, productID int) (marketdomain.Product, error)
}

type PurchaseService interface {
	Purchase(ctx context.Context, buyerID int, productID int) (marketdomain.Order, error)
}

type ReportService interface {
	FileReport(
		ctx context.Context,
		reporterID int,
		targetType marketdomain.ReportTargetType,
		targetID int,
		reason string,
	) (marketdomain.ReportOutcome, error)
}

// ChatService opens rooms and stores their messages. OpenRoom reports true when a new room was created.
type ChatService interface {
	ListRooms(ctx context.Context, userID int) ([]marketdomain.Room, error)
	OpenRoom(ctx context.Context, userID int, name string, isGlobal bool, participantIDs []int) (marketdomain.Room, bool, error)
	ListMessages(ctx context.Context, userID int, roomID int) ([]marketdomain.Message, error)
	PostMessage(ctx context.Context, userID int, roomID int, content string) (marketdomain.Message, error)
}

type AdminService interface {
	ListReports(ctx context.Context, actorID int) ([]marketdomain.Report, error)
	SetReportStatus(ctx context.Context, actorID int, reportID int, status marketdomain.ReportStatus) (marketdomain.Report, error)
	SetUserSuspended(ctx context.Context, actorID int, userID int, suspended bool) (marketdomain.User, error)
	SetProductStatus(ctx context.Context, actorID int, productID int, status marketdomain.ProductStatus) (marketdomain.Product, error)
}

// IdempotencyGuard claims a key once. Acquire reports false when the key was already claimed.
// Release gives a claimed key back so the request can be retried.
type IdempotencyGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
