package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSold      ProductStatus = "sold"
	ProductRemoved   ProductStatus = "removed"
)

type ProductsRepository interface {
	CreateProduct(ctx context.Context, product Product) (Product, error)
	GetProduct(ctx context.Context, productID int) (Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	UpdateProduct(ctx context.Context, productID int, patch ProductPatch) (Product, error)
	SetProductStatus(ctx context.Context, productID int, status ProductStatus) (Product, error)
}

type ProductLocker interface {
	LockProduct(ctx context.Context, querier database.Querier, productID int) (Product, error)
}

type Product struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	ImageUrl    string        `json:"imageUrl"`
	SellerID    int           `json:"sellerId"`
	Status      ProductStatus `json:"status"`
	ReportCount int           `json:"reportCount"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// ProductFilter narrows ListProducts. Removed products are never listed.
type ProductFilter struct {
	SellerID *int
	Search   string
}

type ProductPatch struct {
	Title       *string
	Description *string
	Price       *int64
	ImageUrl    *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.ImageUrl == nil
}
