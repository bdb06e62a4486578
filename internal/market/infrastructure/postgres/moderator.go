package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type Moderator struct {
}

func NewModerator() *Moderator {
	return &Moderator{}
}

// Escalate removes the reported product and suspends its seller. Sold products keep their
// status. Must run in the transaction that produced the tally.
func (m *Moderator) Escalate(ctx context.Context, executor database.Executor, tally domain.ProductTally) error {
	removeProductSQL := `UPDATE products SET status = 'removed' WHERE id = $1 AND status = 'available'`
	_, err := executor.Exec(ctx, removeProductSQL, tally.ProductID)
	if err != nil {
		return fmt.Errorf("failed to remove product: %w", err)
	}

	suspendSellerSQL := `UPDATE users SET is_suspended = TRUE WHERE id = $1`
	_, err = executor.Exec(ctx, suspendSellerSQL, tally.SellerID)
	if err != nil {
		return fmt.Errorf("failed to suspend seller: %w", err)
	}

	return nil
}
