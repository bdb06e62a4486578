package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ReportsRepository struct {
	querier database.Querier
}

func NewReportsRepository(querier database.Querier) *ReportsRepository {
	return &ReportsRepository{
		querier: querier,
	}
}

func (rr *ReportsRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	selectSQL := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC, id DESC`

	rows, err := rr.querier.Query(ctx, selectSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}

func (rr *ReportsRepository) SetReportStatus(ctx context.Context, reportID int, status domain.ReportStatus) (domain.Report, error) {
	updateSQL := `UPDATE reports SET status = $2 WHERE id = $1 RETURNING ` + reportColumns

	report, err := scanReport(rr.querier.QueryRow(ctx, updateSQL, reportID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Report{}, domain.NewNotFoundError(domain.EntityReport, reportID)
		}

		return domain.Report{}, fmt.Errorf("failed to set report status: %w", err)
	}

	return report, nil
}

type ReportCreator struct {
}

func NewReportCreator() *ReportCreator {
	return &ReportCreator{}
}

func (rc *ReportCreator) CreateReport(ctx context.Context, querier database.Querier, report domain.Report) (domain.Report, error) {
	insertSQL := `INSERT INTO reports (reporter_id, target_type, target_id, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := querier.QueryRow(ctx, insertSQL,
		report.ReporterID, string(report.TargetType), report.TargetID, report.Reason, string(report.Status)).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to insert report: %w", err)
	}

	return report, nil
}
