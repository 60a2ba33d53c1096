package orders

import (
	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// OrderQueryUseCase read-only order lookups.
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase builds the use case.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// GetByID returns one order scoped to the caller's business.
func (uc *OrderQueryUseCase) GetByID(businessID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List returns a page of the business's orders, newest first.
func (uc *OrderQueryUseCase) List(businessID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByBusiness(businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
