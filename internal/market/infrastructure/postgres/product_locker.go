package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ProductLocker struct {
}

func NewProductLocker() *ProductLocker {
	return &ProductLocker{}
}

func (pl *ProductLocker) LockProduct(ctx context.Context, querier database.Querier, productID int) (domain.Product, error) {
	lockProductSQL := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`

	product, err := scanProduct(querier.QueryRow(ctx, lockProductSQL, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.NewNotFoundError(domain.EntityProduct, productID)
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}
