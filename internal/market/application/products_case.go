package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
)

type ProductsCase struct {
	productsRepository domain.ProductsRepository
	usersRepository    domain.UsersRepository
}

func NewProductsCase(productsRepository domain.ProductsRepository, usersRepository domain.UsersRepository) *ProductsCase {
	return &ProductsCase{
		productsRepository: productsRepository,
		usersRepository:    usersRepository,
	}
}

func (pc *ProductsCase) CreateProduct(ctx context.Context, sellerID int, title, description string, price int64, imageUrl string) (domain.Product, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateListing(title, description, price); err != nil {
		return domain.Product{}, err
	}

	return pc.productsRepository.CreateProduct(ctx, domain.Product{
		Title:       title,
		Description: description,
		Price:       price,
		ImageUrl:    strings.TrimSpace(imageUrl),
		SellerID:    sellerID,
		Status:      domain.ProductAvailable,
	})
}

func (pc *ProductsCase) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx, domain.ProductFilter{Search: strings.TrimSpace(search)})
}

func (pc *ProductsCase) ListSellerProducts(ctx context.Context, sellerID int) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx, domain.ProductFilter{SellerID: &sellerID})
}

func (pc *ProductsCase) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	return pc.productsRepository.GetProduct(ctx, productID)
}

// UpdateProduct edits an available listing on behalf of its seller or an administrator.
func (pc *ProductsCase) UpdateProduct(ctx context.Context, actorID int, productID int, patch domain.ProductPatch) (domain.Product, error) {
	product, err := pc.authorizeOwner(ctx, actorID, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.Status != domain.ProductAvailable {
		return domain.Product{}, &domain.ConflictError{
			Reason: domain.ReasonNotAvailable,
			Msg:    fmt.Sprintf("product %d is %s and can no longer be edited", productID, product.Status),
		}
	}

	if patch.IsEmpty() {
		return product, nil
	}

	title, description, price := product.Title, product.Description, product.Price
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Description != nil {
		description = strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if patch.Price != nil {
		price = *patch.Price
	}

	if err := validateListing(title, description, price); err != nil {
		return domain.Product{}, err
	}

	return pc.productsRepository.UpdateProduct(ctx, productID, patch)
}

// DeleteProduct hides the listing by marking it removed. Sold listings stay sold.
func (pc *ProductsCase) DeleteProduct(ctx context.Context, actorID int, productID int) (domain.Product, error) {
	product, err := pc.authorizeOwner(ctx, actorID, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.Status == domain.ProductSold {
		return domain.Product{}, &domain.ConflictError{
			Reason: domain.ReasonAlreadySold,
			Msg:    fmt.Sprintf("product %d is already sold", productID),
		}
	}

	return pc.productsRepository.SetProductStatus(ctx, productID, domain.ProductRemoved)
}

func (pc *ProductsCase) authorizeOwner(ctx context.Context, actorID int, productID int) (domain.Product, error) {
	product, err := pc.productsRepository.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.SellerID == actorID {
		return product, nil
	}

	actor, err := pc.usersRepository.GetUser(ctx, actorID)
	if err != nil {
		return domain.Product{}, err
	}

	if !actor.IsAdmin {
		return domain.Product{}, &domain.ForbiddenError{Msg: "only the seller or an administrator can change this product"}
	}

	return product, nil
}

func validateListing(title, description string, price int64) error {
	if title == "" || description == "" {
		return &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidProduct,
			Msg:    "title and description are required",
		}
	}

	if price < 0 {
		return &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidProduct,
			Msg:    "price must not be negative",
		}
	}

	return nil
}
