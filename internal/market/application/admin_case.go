package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
)

type AdminCase struct {
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	reportsRepository  domain.ReportsRepository
}

func NewAdminCase(
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	reportsRepository domain.ReportsRepository,
) *AdminCase {
	return &AdminCase{
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		reportsRepository:  reportsRepository,
	}
}

func (ac *AdminCase) ListReports(ctx context.Context, actorID int) ([]domain.Report, error) {
	if err := ac.authorize(ctx, actorID); err != nil {
		return nil, err
	}

	return ac.reportsRepository.ListReports(ctx)
}

func (ac *AdminCase) SetReportStatus(ctx context.Context, actorID int, reportID int, status domain.ReportStatus) (domain.Report, error) {
	if err := ac.authorize(ctx, actorID); err != nil {
		return domain.Report{}, err
	}

	if !status.Valid() {
		return domain.Report{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidStatus,
			Msg:    fmt.Sprintf("invalid report status %q", status),
		}
	}

	return ac.reportsRepository.SetReportStatus(ctx, reportID, status)
}

func (ac *AdminCase) SetUserSuspended(ctx context.Context, actorID int, userID int, suspended bool) (domain.User, error) {
	if err := ac.authorize(ctx, actorID); err != nil {
		return domain.User{}, err
	}

	return ac.usersRepository.SetUserSuspended(ctx, userID, suspended)
}

// SetProductStatus removes or restores a listing. Sold is terminal and only reachable by purchase.
func (ac *AdminCase) SetProductStatus(ctx context.Context, actorID int, productID int, status domain.ProductStatus) (domain.Product, error) {
	if err := ac.authorize(ctx, actorID); err != nil {
		return domain.Product{}, err
	}

	if status != domain.ProductAvailable && status != domain.ProductRemoved {
		return domain.Product{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidStatus,
			Msg:    fmt.Sprintf("invalid product status %q", status),
		}
	}

	product, err := ac.productsRepository.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.Status == domain.ProductSold {
		return domain.Product{}, &domain.ConflictError{
			Reason: domain.ReasonAlreadySold,
			Msg:    fmt.Sprintf("product %d is already sold", productID),
		}
	}

	return ac.productsRepository.SetProductStatus(ctx, productID, status)
}

func (ac *AdminCase) authorize(ctx context.Context, actorID int) error {
	actor, err := ac.usersRepository.GetUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, &domain.NotFoundError{}) {
			return &domain.ForbiddenError{Msg: "administrator privileges required"}
		}

		return err
	}

	if !actor.IsAdmin {
		return &domain.ForbiddenError{Msg: "administrator privileges required"}
	}

	return nil
}
