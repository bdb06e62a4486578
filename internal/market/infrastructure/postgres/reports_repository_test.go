package postgres

import (
	"testing"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportColumnNames = []string{"id", "reporter_id", "target_type", "target_id", "reason", "status", "created_at"}

func TestReportCreator_CreateReport(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := domain.Report{ReporterID: 3, TargetType: domain.TargetProduct, TargetID: 7, Reason: "scam", Status: domain.ReportPending}

	t.Run("report stored", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("INSERT INTO reports").
			WithArgs(3, "product", 7, "scam", "pending").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(40, createdAt))

		res, err := NewReportCreator().CreateReport(t.Context(), mock, report)

		expected := report
		expected.ID = 40
		expected.CreatedAt = createdAt

		require.NoError(t, err)
		assert.Equal(t, expected, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("INSERT INTO reports").
			WithArgs(3, "product", 7, "scam", "pending").
			WillReturnError(assert.AnError)

		_, err = NewReportCreator().CreateReport(t.Context(), mock, report)

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportsRepository_ListReports(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT .* FROM reports ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows(reportColumnNames).
			AddRow(41, 3, "user", 2, "rude", "pending", createdAt).
			AddRow(40, 3, "product", 7, "scam", "resolved", createdAt))

	res, err := NewReportsRepository(mock).ListReports(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []domain.Report{
		{ID: 41, ReporterID: 3, TargetType: domain.TargetUser, TargetID: 2, Reason: "rude", Status: domain.ReportPending, CreatedAt: createdAt},
		{ID: 40, ReporterID: 3, TargetType: domain.TargetProduct, TargetID: 7, Reason: "scam", Status: domain.ReportResolved, CreatedAt: createdAt},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportsRepository_SetReportStatus(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		expectedRes domain.Report
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "report dismissed",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE reports SET status").
					WithArgs(40, "dismissed").
					WillReturnRows(pgxmock.NewRows(reportColumnNames).
						AddRow(40, 3, "product", 7, "scam", "dismissed", time.Time{}))
			},
			expectedRes: domain.Report{ID: 40, ReporterID: 3, TargetType: domain.TargetProduct, TargetID: 7, Reason: "scam", Status: domain.ReportDismissed},
		},
		{
			name: "report not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE reports SET status").
					WithArgs(40, "dismissed").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.NotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			res, err := NewReportsRepository(mock).SetReportStatus(t.Context(), 40, domain.ReportDismissed)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
