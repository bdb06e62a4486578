package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type Purchaser interface {
	ProcessPurchase(ctx context.Context, executor database.QueryExecuter, sale Sale) (Order, error)
}

type OrdersRepository interface {
	FetchUserPurchases(ctx context.Context, userID int) ([]Order, error)
	FetchUserSales(ctx context.Context, userID int) ([]Order, error)
}

// Sale is the validated input of a single purchase write.
type Sale struct {
	BuyerID   int
	SellerID  int
	ProductID int
	Amount    int64
}

type Order struct {
	ID        int       `json:"id"`
	BuyerID   int       `json:"buyerId"`
	SellerID  int       `json:"sellerId"`
	ProductID int       `json:"productId"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
