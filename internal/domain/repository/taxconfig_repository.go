package repository

import "github.com/orderly-app/orderly-api/internal/domain/entity"

// TaxConfigRepository defines the persistence port for the per-business tax
// configuration document. Get returns an empty config (no error) for a
// business that has never saved one, and transparently migrates the legacy
// single-rate stored shape to the tax-line list.
type TaxConfigRepository interface {
	Get(businessID string) (*entity.TaxConfig, error)
	Save(config *entity.TaxConfig) error
}
