package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ReportTallier struct {
}

func NewReportTallier() *ReportTallier {
	return &ReportTallier{}
}

// IncrementProductReports bumps the counter and reads it back in one statement, so two
// concurrent reports always observe distinct counts.
func (rt *ReportTallier) IncrementProductReports(ctx context.Context, querier database.Querier, productID int) (domain.ProductTally, bool, error) {
	incrementSQL := `UPDATE products SET report_count = report_count + 1
		WHERE id = $1
		RETURNING id, seller_id, report_count, status`

	var tally domain.ProductTally
	var status string

	err := querier.QueryRow(ctx, incrementSQL, productID).
		Scan(&tally.ProductID, &tally.SellerID, &tally.ReportCount, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProductTally{}, false, nil
		}

		return domain.ProductTally{}, false, fmt.Errorf("failed to increment product reports: %w", err)
	}

	tally.Status = domain.ProductStatus(status)
	return tally, true, nil
}

func (rt *ReportTallier) IncrementUserReports(ctx context.Context, executor database.Executor, userID int) error {
	incrementSQL := `UPDATE users SET report_count = report_count + 1 WHERE id = $1`

	_, err := executor.Exec(ctx, incrementSQL, userID)
	if err != nil {
		return fmt.Errorf("failed to increment user reports: %w", err)
	}

	return nil
}
