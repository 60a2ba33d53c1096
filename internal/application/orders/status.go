package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/inventory"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// OrderStatusUseCase applies order status transitions.
//
// Allowed transitions: pending → completed and pending → cancelled. Completed
// and cancelled are terminal; every other transition (including cancelling a
// completed order, which would restore stock that already left the shelf)
// returns ErrInvalidTransition.
type OrderStatusUseCase struct {
	orderRepo repository.OrderRepository
	txRunner  TxRunner
}

// NewOrderStatusUseCase builds the use case.
func NewOrderStatusUseCase(orderRepo repository.OrderRepository, txRunner TxRunner) *OrderStatusUseCase {
	return &OrderStatusUseCase{orderRepo: orderRepo, txRunner: txRunner}
}

// Execute transitions the order to the target status. Completion is a plain
// status write; cancellation additionally restores the deducted stock and
// writes restore ledger entries, all in one transaction.
func (uc *OrderStatusUseCase) Execute(ctx context.Context, businessID, orderID, target string) (*dto.OrderResponse, error) {
	if target != entity.OrderStatusCompleted && target != entity.OrderStatusCancelled {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Lock the order row so concurrent transitions serialize; the second
		// one sees the terminal status and fails cleanly.
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil || order.BusinessID != businessID {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return domain.ErrInvalidTransition
		}

		if target == entity.OrderStatusCancelled {
			now := time.Now()
			for _, productID := range distinctProductIDs(order.Items) {
				product, err := productRepo.GetForUpdate(productID)
				if err != nil {
					return err
				}
				if product == nil {
					// Product deleted since the sale: nothing to restore to,
					// the ledger entry still records the intent.
					continue
				}
				inventory.RestoreStock(product, order.Items)
				if err := productRepo.UpdateStock(product); err != nil {
					return err
				}
			}
			for _, mov := range inventory.MovementsFor(order, entity.MovementTypeRestore, now) {
				mov.ID = uuid.New().String()
				if err := movementRepo.Create(&mov); err != nil {
					return err
				}
			}
		}

		if err := orderRepo.UpdateStatus(orderID, target); err != nil {
			return err
		}
		order.Status = target
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(result), nil
}
