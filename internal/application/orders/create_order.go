package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/inventory"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// CreateOrderUseCase creates priced orders. Pricing reads the live tax config
// at creation time and freezes it into tax snapshots; the stock deduction and
// the order insert commit in one transaction.
type CreateOrderUseCase struct {
	productRepo   repository.ProductRepository
	taxConfigRepo repository.TaxConfigRepository
	txRunner      TxRunner
}

// NewCreateOrderUseCase builds the use case.
func NewCreateOrderUseCase(
	productRepo repository.ProductRepository,
	taxConfigRepo repository.TaxConfigRepository,
	txRunner TxRunner,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		productRepo:   productRepo,
		taxConfigRepo: taxConfigRepo,
		txRunner:      txRunner,
	}
}

// Execute validates the payload, snapshots catalog prices into order items,
// prices the order and commits it together with the stock deduction and its
// ledger entries. Oversell is allowed: stock may go negative, availability is
// surfaced through low-stock reporting instead of blocking the sale.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, businessID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 || in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Resolve and snapshot catalog data outside the transaction: name, unit
	// price (base plus option adjustment) and option label at time of sale.
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, reqItem := range in.Items {
		if reqItem.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.BusinessID != businessID {
			return nil, domain.ErrNotFound
		}
		item := entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    reqItem.Quantity,
			Price:       product.Price,
		}
		if product.HasOptions() {
			opt := findOption(product.OptionGroup, reqItem.SelectedOptionID)
			if opt == nil {
				return nil, domain.ErrInvalidInput
			}
			item.SelectedOptionID = opt.ID
			item.SelectedOptionLabel = opt.Label
			item.Price = product.Price.Add(opt.PriceAdjustment)
		}
		items = append(items, item)
	}

	taxConfig, err := uc.taxConfigRepo.Get(businessID)
	if err != nil {
		return nil, err
	}
	totals := pricing.ComputeOrderTotals(items, *taxConfig, in.Discount)

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		CustomerName:   in.CustomerName,
		WhatsAppNumber: in.WhatsAppNumber,
		Items:          items,
		Subtotal:       totals.Subtotal,
		TaxSnapshots:   totals.TaxSnapshots,
		TaxAmount:      totals.TaxAmount,
		Discount:       totals.Discount,
		Total:          totals.Total,
		Status:         entity.OrderStatusPending,
		Note:           in.Note,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Lock each product row once (SELECT FOR UPDATE), apply all of the
		// order's items against it, persist the adjusted stock.
		for _, productID := range distinctProductIDs(items) {
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			// The product can vanish between the pre-transaction snapshot read
			// and the row lock. Abort: an order can't deduct from a product
			// that no longer exists.
			if product == nil {
				return domain.ErrNotFound
			}
			inventory.DeductStock(product, items)
			if err := productRepo.UpdateStock(product); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, mov := range inventory.MovementsFor(order, entity.MovementTypeDeduct, now) {
			mov.ID = uuid.New().String()
			if err := movementRepo.Create(&mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func findOption(group *entity.ProductOptionGroup, optionID string) *entity.ProductOption {
	if optionID == "" {
		return nil
	}
	for i := range group.Options {
		if group.Options[i].ID == optionID {
			return &group.Options[i]
		}
	}
	return nil
}

// distinctProductIDs preserves first-seen order so locks are always taken in
// a consistent sequence, avoiding deadlocks between concurrent orders.
func distinctProductIDs(items []entity.OrderItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:           item.ProductID,
			ProductName:         item.ProductName,
			Quantity:            item.Quantity,
			Price:               item.Price,
			SelectedOptionID:    item.SelectedOptionID,
			SelectedOptionLabel: item.SelectedOptionLabel,
		})
	}
	snapshots := make([]dto.TaxSnapshotResponse, 0, len(o.TaxSnapshots))
	for _, snap := range o.TaxSnapshots {
		snapshots = append(snapshots, dto.TaxSnapshotResponse{
			ID:     snap.ID,
			Name:   snap.Name,
			Rate:   snap.Rate,
			Amount: snap.Amount,
		})
	}
	return &dto.OrderResponse{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		WhatsAppNumber: o.WhatsAppNumber,
		Items:          items,
		Subtotal:       o.Subtotal,
		TaxSnapshots:   snapshots,
		TaxAmount:      o.TaxAmount,
		Discount:       o.Discount,
		Total:          o.Total,
		Status:         o.Status,
		Note:           o.Note,
		CreatedAt:      o.CreatedAt,
	}
}
