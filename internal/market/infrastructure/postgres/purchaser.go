package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type Purchaser struct {
}

func NewPurchaser() *Purchaser {
	return &Purchaser{}
}

// ProcessPurchase applies the four purchase writes. Each write re-checks its precondition so a
// stale caller fails instead of overdrawing a balance or selling a product twice.
func (p *Purchaser) ProcessPurchase(ctx context.Context, executor database.QueryExecuter, sale domain.Sale) (domain.Order, error) {
	debitSQL := `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, sale.Amount, sale.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to debit buyer balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Order{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInsufficientBalance,
			Msg:    "insufficient balance",
		}
	}

	creditSQL := `UPDATE users SET balance = balance + $1 WHERE id = $2`
	tag, err = executor.Exec(ctx, creditSQL, sale.Amount, sale.SellerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to credit seller balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Order{}, &domain.IntegrityError{
			Msg: fmt.Sprintf("product %d references missing seller %d", sale.ProductID, sale.SellerID),
			Err: domain.NewNotFoundError(domain.EntitySeller, sale.SellerID),
		}
	}

	markSoldSQL := `UPDATE products SET status = 'sold' WHERE id = $1 AND status = 'available'`
	tag, err = executor.Exec(ctx, markSoldSQL, sale.ProductID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to mark product sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Order{}, &domain.ConflictError{
			Reason: domain.ReasonAlreadySold,
			Msg:    fmt.Sprintf("product %d is already sold", sale.ProductID),
		}
	}

	insertOrderSQL := `INSERT INTO orders (buyer_id, seller_id, product_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	order := domain.Order{
		BuyerID:   sale.BuyerID,
		SellerID:  sale.SellerID,
		ProductID: sale.ProductID,
		Amount:    sale.Amount,
	}
	err = executor.QueryRow(ctx, insertOrderSQL, sale.BuyerID, sale.SellerID, sale.ProductID, sale.Amount).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Order{}, &domain.ConflictError{
				Reason: domain.ReasonAlreadySold,
				Msg:    fmt.Sprintf("product %d already has an order", sale.ProductID),
			}
		}

		return domain.Order{}, fmt.Errorf("failed to insert order record: %w", err)
	}

	return order, nil
}
