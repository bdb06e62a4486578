package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type PurchaseCase struct {
	txManager     database.TxManager
	productLocker domain.ProductLocker
	userLocker    domain.UserLocker
	purchaser     domain.Purchaser
}

func NewPurchaseCase(
	txManager database.TxManager,
	productLocker domain.ProductLocker,
	userLocker domain.UserLocker,
	purchaser domain.Purchaser,
) *PurchaseCase {
	return &PurchaseCase{
		txManager:     txManager,
		productLocker: productLocker,
		userLocker:    userLocker,
		purchaser:     purchaser,
	}
}

// Purchase sells the product to the buyer. Preconditions are evaluated on locked rows, so two
// concurrent purchases of one product yield a single order and one already-sold conflict.
func (pc *PurchaseCase) Purchase(ctx context.Context, buyerID int, productID int) (domain.Order, error) {
	var order domain.Order

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productLocker.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.Status != domain.ProductAvailable {
			return &domain.ConflictError{
				Reason: domain.ReasonAlreadySold,
				Msg:    fmt.Sprintf("product %d is already sold", productID),
			}
		}

		if product.SellerID == buyerID {
			return &domain.InvalidOperationError{
				Reason: domain.ReasonSelfPurchase,
				Msg:    "cannot purchase your own product",
			}
		}

		users, err := pc.userLocker.LockUsers(ctx, executor, buyerID, product.SellerID)
		if err != nil {
			return err
		}

		buyer, ok := users[buyerID]
		if !ok {
			return domain.NewNotFoundError(domain.EntityBuyer, buyerID)
		}

		if buyer.Balance < product.Price {
			return &domain.InvalidOperationError{
				Reason: domain.ReasonInsufficientBalance,
				Msg:    "insufficient balance",
			}
		}

		if _, ok := users[product.SellerID]; !ok {
			return &domain.IntegrityError{
				Msg: fmt.Sprintf("product %d references missing seller %d", productID, product.SellerID),
				Err: domain.NewNotFoundError(domain.EntitySeller, product.SellerID),
			}
		}

		order, err = pc.purchaser.ProcessPurchase(ctx, executor, domain.Sale{
			BuyerID:   buyerID,
			SellerID:  product.SellerID,
			ProductID: productID,
			Amount:    product.Price,
		})
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}
