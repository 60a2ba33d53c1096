package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// TaxConfigUseCase manages the per-business tax line list. Changes here only
// affect future orders: already-persisted orders keep their tax snapshots.
type TaxConfigUseCase struct {
	repo repository.TaxConfigRepository
}

// NewTaxConfigUseCase builds the use case.
func NewTaxConfigUseCase(repo repository.TaxConfigRepository) *TaxConfigUseCase {
	return &TaxConfigUseCase{repo: repo}
}

// Get returns the business tax configuration. A business that never saved one
// gets an empty list, not an error.
func (uc *TaxConfigUseCase) Get(businessID string) (*dto.TaxConfigResponse, error) {
	config, err := uc.repo.Get(businessID)
	if err != nil {
		return nil, err
	}
	return toTaxConfigResponse(config), nil
}

// AddTax appends a tax line. Negative rates are rejected; zero is a legal rate
// (a disabled-in-effect line that still shows up in snapshots when enabled).
func (uc *TaxConfigUseCase) AddTax(businessID string, in dto.AddTaxRequest) (*dto.TaxConfigResponse, error) {
	if in.Name == "" || in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	mode := in.Mode
	if mode == "" {
		mode = entity.TaxModeFixed
	}
	config, err := uc.repo.Get(businessID)
	if err != nil {
		return nil, err
	}
	config.BusinessID = businessID
	config.Taxes = append(config.Taxes, entity.TaxLine{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Rate:    in.Rate,
		Mode:    mode,
		Enabled: in.Enabled,
	})
	config.UpdatedAt = time.Now()
	if err := uc.repo.Save(config); err != nil {
		return nil, err
	}
	return toTaxConfigResponse(config), nil
}

// UpdateTax patches one tax line by ID. Nil fields are left unchanged.
func (uc *TaxConfigUseCase) UpdateTax(businessID, taxID string, in dto.UpdateTaxRequest) (*dto.TaxConfigResponse, error) {
	if in.Rate != nil && in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	config, err := uc.repo.Get(businessID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range config.Taxes {
		if config.Taxes[i].ID == taxID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	line := &config.Taxes[idx]
	if in.Name != nil {
		line.Name = *in.Name
	}
	if in.Rate != nil {
		line.Rate = *in.Rate
	}
	if in.Mode != nil {
		line.Mode = *in.Mode
	}
	if in.Enabled != nil {
		line.Enabled = *in.Enabled
	}
	config.BusinessID = businessID
	config.UpdatedAt = time.Now()
	if err := uc.repo.Save(config); err != nil {
		return nil, err
	}
	return toTaxConfigResponse(config), nil
}

// RemoveTax deletes one tax line by ID.
func (uc *TaxConfigUseCase) RemoveTax(businessID, taxID string) (*dto.TaxConfigResponse, error) {
	config, err := uc.repo.Get(businessID)
	if err != nil {
		return nil, err
	}
	kept := config.Taxes[:0]
	found := false
	for _, line := range config.Taxes {
		if line.ID == taxID {
			found = true
			continue
		}
		kept = append(kept, line)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	config.Taxes = kept
	config.BusinessID = businessID
	config.UpdatedAt = time.Now()
	if err := uc.repo.Save(config); err != nil {
		return nil, err
	}
	return toTaxConfigResponse(config), nil
}

func toTaxConfigResponse(c *entity.TaxConfig) *dto.TaxConfigResponse {
	out := &dto.TaxConfigResponse{
		Taxes:     make([]dto.TaxLineResponse, 0, len(c.Taxes)),
		UpdatedAt: c.UpdatedAt,
	}
	for _, line := range c.Taxes {
		out.Taxes = append(out.Taxes, dto.TaxLineResponse{
			ID:      line.ID,
			Name:    line.Name,
			Rate:    line.Rate,
			Mode:    line.Mode,
			Enabled: line.Enabled,
		})
	}
	return out
}
