package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

// EscalationThreshold is the product report count at which the product is removed and its seller suspended.
const EscalationThreshold = 5

type ReportTargetType string

const (
	TargetUser    ReportTargetType = "user"
	TargetProduct ReportTargetType = "product"
)

func (t ReportTargetType) Valid() bool {
	return t == TargetUser || t == TargetProduct
}

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	return s == ReportPending || s == ReportResolved || s == ReportDismissed
}

type ReportsRepository interface {
	ListReports(ctx context.Context) ([]Report, error)
	SetReportStatus(ctx context.Context, reportID int, status ReportStatus) (Report, error)
}

type ReportCreator interface {
	CreateReport(ctx context.Context, querier database.Querier, report Report) (Report, error)
}

type ReportTallier interface {
	// IncrementProductReports bumps the product tally and returns the post-increment row.
	// found is false when the product does not exist.
	IncrementProductReports(ctx context.Context, querier database.Querier, productID int) (tally ProductTally, found bool, err error)
	IncrementUserReports(ctx context.Context, executor database.Executor, userID int) error
}

type Moderator interface {
	Escalate(ctx context.Context, executor database.Executor, tally ProductTally) error
}

type ProductTally struct {
	ProductID   int
	SellerID    int
	ReportCount int
	Status      ProductStatus
}

// ShouldEscalate reports whether this tally triggers moderation. A sold product is never
// removed, so its seller is suspended once, when the tally reaches the threshold.
func (t ProductTally) ShouldEscalate() bool {
	switch t.Status {
	case ProductAvailable:
		return t.ReportCount >= EscalationThreshold
	case ProductSold:
		return t.ReportCount == EscalationThreshold
	default:
		return false
	}
}

type Report struct {
	ID         int              `json:"id"`
	ReporterID int              `json:"reporterId"`
	TargetType ReportTargetType `json:"targetType"`
	TargetID   int              `json:"targetId"`
	Reason     string           `json:"reason"`
	Status     ReportStatus     `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type ReportOutcome struct {
	Report    Report `json:"report"`
	Escalated bool   `json:"escalated"`
}
