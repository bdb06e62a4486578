package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type OrdersRepository struct {
	querier database.Querier
}

func NewOrdersRepository(querier database.Querier) *OrdersRepository {
	return &OrdersRepository{
		querier: querier,
	}
}

func (r *OrdersRepository) FetchUserPurchases(ctx context.Context, userID int) ([]domain.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC, id DESC`
	return r.fetchOrders(ctx, sql, userID)
}

func (r *OrdersRepository) FetchUserSales(ctx context.Context, userID int) ([]domain.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE seller_id = $1 ORDER BY created_at DESC, id DESC`
	return r.fetchOrders(ctx, sql, userID)
}

func (r *OrdersRepository) fetchOrders(ctx context.Context, sql string, userID int) ([]domain.Order, error) {
	rows, err := r.querier.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}
