package repository

import "github.com/orderly-app/orderly-api/internal/domain/entity"

// ProductRepository defines the persistence port for Product (DIP).
// GetForUpdate locks the product row (SELECT FOR UPDATE) and is only
// meaningful inside a transaction; stock reconciliation depends on it.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(product *entity.Product) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error)
	ListLowStock(businessID string) ([]*entity.Product, error)
	CountLowStock(businessID string) (int, error)
	Delete(id string) error
}
