package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
)

type ReportCase struct {
	txManager     database.TxManager
	reportCreator domain.ReportCreator
	tallier       domain.ReportTallier
	moderator     domain.Moderator
	logger        logging.Logger
}

func NewReportCase(
	txManager database.TxManager,
	reportCreator domain.ReportCreator,
	tallier domain.ReportTallier,
	moderator domain.Moderator,
	logger logging.Logger,
) *ReportCase {
	return &ReportCase{
		txManager:     txManager,
		reportCreator: reportCreator,
		tallier:       tallier,
		moderator:     moderator,
		logger:        logger,
	}
}

// FileReport stores a pending report and, for products, bumps the tally and applies the
// threshold rule in the same transaction. Targets are not required to exist.
func (rc *ReportCase) FileReport(
	ctx context.Context,
	reporterID int,
	targetType domain.ReportTargetType,
	targetID int,
	reason string,
) (domain.ReportOutcome, error) {
	if !targetType.Valid() {
		return domain.ReportOutcome{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidTargetType,
			Msg:    fmt.Sprintf("invalid report target type %q", targetType),
		}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.ReportOutcome{}, &domain.InvalidOperationError{
			Reason: domain.ReasonEmptyReason,
			Msg:    "report reason must not be empty",
		}
	}

	var outcome domain.ReportOutcome

	err := rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		report, err := rc.reportCreator.CreateReport(ctx, executor, domain.Report{
			ReporterID: reporterID,
			TargetType: targetType,
			TargetID:   targetID,
			Reason:     reason,
			Status:     domain.ReportPending,
		})
		if err != nil {
			return err
		}

		outcome = domain.ReportOutcome{Report: report}

		if targetType == domain.TargetUser {
			return rc.tallier.IncrementUserReports(ctx, executor, targetID)
		}

		escalated, err := rc.evaluateEscalation(ctx, executor, targetID)
		if err != nil {
			return err
		}

		outcome.Escalated = escalated
		return nil
	})
	if err != nil {
		return domain.ReportOutcome{}, err
	}

	if outcome.Escalated {
		rc.logger.Warn("product removed by report threshold", "product_id", targetID, "report_id", outcome.Report.ID)
	}

	return outcome, nil
}

func (rc *ReportCase) evaluateEscalation(ctx context.Context, executor database.QueryExecuter, productID int) (bool, error) {
	tally, found, err := rc.tallier.IncrementProductReports(ctx, executor, productID)
	if err != nil {
		return false, err
	}

	if !found || !tally.ShouldEscalate() {
		return false, nil
	}

	err = rc.moderator.Escalate(ctx, executor, tally)
	if err != nil {
		return false, err
	}

	return true, nil
}
