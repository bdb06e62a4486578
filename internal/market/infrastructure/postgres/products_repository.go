package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// likeEscaper makes user search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductsRepository struct {
	querier database.Querier
}

func NewProductsRepository(querier database.Querier) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (pr *ProductsRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	insertSQL := `INSERT INTO products (title, description, price, image_url, seller_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns

	created, err := scanProduct(pr.querier.QueryRow(ctx, insertSQL,
		product.Title, product.Description, product.Price, product.ImageUrl, product.SellerID, string(product.Status)))
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return created, nil
}

func (pr *ProductsRepository) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	selectSQL := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(pr.querier.QueryRow(ctx, selectSQL, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.NewNotFoundError(domain.EntityProduct, productID)
		}

		return domain.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (pr *ProductsRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	conditions := []string{`status <> 'removed'`}
	args := make([]any, 0, 2)

	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		conditions = append(conditions, `seller_id = $`+strconv.Itoa(len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
		placeholder := `$` + strconv.Itoa(len(args))
		conditions = append(conditions,
			`(title ILIKE `+placeholder+` ESCAPE '\' OR description ILIKE `+placeholder+` ESCAPE '\')`)
	}

	selectSQL := `SELECT ` + productColumns + ` FROM products
		WHERE ` + strings.Join(conditions, ` AND `) + `
		ORDER BY created_at DESC, id DESC`

	rows, err := pr.querier.Query(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// UpdateProduct applies the non-nil patch fields. Only available products are changed.
func (pr *ProductsRepository) UpdateProduct(ctx context.Context, productID int, patch domain.ProductPatch) (domain.Product, error) {
	updateSQL := `UPDATE products SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			image_url = COALESCE($5, image_url)
		WHERE id = $1 AND status = 'available'
		RETURNING ` + productColumns

	product, err := scanProduct(pr.querier.QueryRow(ctx, updateSQL,
		productID, patch.Title, patch.Description, patch.Price, patch.ImageUrl))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ConflictError{
				Reason: domain.ReasonNotAvailable,
				Msg:    fmt.Sprintf("product %d is not available", productID),
			}
		}

		return domain.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// SetProductStatus overwrites the status. Restoring to available clears the report tally.
// Sold rows are never changed: the callers check existence first, so no row means the
// product was sold in the meantime.
func (pr *ProductsRepository) SetProductStatus(ctx context.Context, productID int, status domain.ProductStatus) (domain.Product, error) {
	updateSQL := `UPDATE products SET
			status = $2,
			report_count = CASE WHEN $2 = 'available' THEN 0 ELSE report_count END
		WHERE id = $1 AND status <> 'sold'
		RETURNING ` + productColumns

	product, err := scanProduct(pr.querier.QueryRow(ctx, updateSQL, productID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ConflictError{
				Reason: domain.ReasonAlreadySold,
				Msg:    fmt.Sprintf("product %d is already sold", productID),
			}
		}

		return domain.Product{}, fmt.Errorf("failed to set product status: %w", err)
	}

	return product, nil
}
