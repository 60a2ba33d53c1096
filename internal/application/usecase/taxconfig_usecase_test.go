package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

type fakeTaxConfigRepo struct {
	config *entity.TaxConfig
}

func (r *fakeTaxConfigRepo) Get(businessID string) (*entity.TaxConfig, error) {
	if r.config == nil {
		return &entity.TaxConfig{BusinessID: businessID}, nil
	}
	return r.config, nil
}
func (r *fakeTaxConfigRepo) Save(c *entity.TaxConfig) error { r.config = c; return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string          { return &s }
func boolPtr(b bool) *bool             { return &b }
func decPtr(s string) *decimal.Decimal { d := dec(s); return &d }

func TestTaxConfig_EmptyByDefault(t *testing.T) {
	uc := NewTaxConfigUseCase(&fakeTaxConfigRepo{})

	resp, err := uc.Get("biz-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Taxes)
}

func TestTaxConfig_AddTax(t *testing.T) {
	uc := NewTaxConfigUseCase(&fakeTaxConfigRepo{})

	resp, err := uc.AddTax("biz-1", dto.AddTaxRequest{Name: "VAT", Rate: dec("5"), Enabled: true})
	require.NoError(t, err)
	require.Len(t, resp.Taxes, 1)
	assert.Equal(t, "VAT", resp.Taxes[0].Name)
	assert.Equal(t, entity.TaxModeFixed, resp.Taxes[0].Mode) // default mode
	assert.NotEmpty(t, resp.Taxes[0].ID)
	assert.False(t, resp.UpdatedAt.IsZero())
}

func TestTaxConfig_ZeroRateAllowedNegativeRejected(t *testing.T) {
	uc := NewTaxConfigUseCase(&fakeTaxConfigRepo{})

	_, err := uc.AddTax("biz-1", dto.AddTaxRequest{Name: "Zero", Rate: decimal.Zero, Enabled: true})
	assert.NoError(t, err)

	_, err = uc.AddTax("biz-1", dto.AddTaxRequest{Name: "Bad", Rate: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaxConfig_UpdateTax(t *testing.T) {
	uc := NewTaxConfigUseCase(&fakeTaxConfigRepo{})

	resp, err := uc.AddTax("biz-1", dto.AddTaxRequest{Name: "VAT", Rate: dec("5"), Enabled: true})
	require.NoError(t, err)
	taxID := resp.Taxes[0].ID

	resp, err = uc.UpdateTax("biz-1", taxID, dto.UpdateTaxRequest{
		Rate:    decPtr("7.5"),
		Enabled: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, resp.Taxes[0].Rate.Equal(dec("7.5")))
	assert.False(t, resp.Taxes[0].Enabled)
	assert.Equal(t, "VAT", resp.Taxes[0].Name) // untouched field preserved

	_, err = uc.UpdateTax("biz-1", taxID, dto.UpdateTaxRequest{Rate: decPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateTax("biz-1", "ghost", dto.UpdateTaxRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaxConfig_RemoveTax(t *testing.T) {
	uc := NewTaxConfigUseCase(&fakeTaxConfigRepo{})

	resp, err := uc.AddTax("biz-1", dto.AddTaxRequest{Name: "VAT", Rate: dec("5"), Enabled: true})
	require.NoError(t, err)
	resp, err = uc.AddTax("biz-1", dto.AddTaxRequest{Name: "Service", Rate: dec("10"), Enabled: true})
	require.NoError(t, err)
	require.Len(t, resp.Taxes, 2)

	resp, err = uc.RemoveTax("biz-1", resp.Taxes[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Taxes, 1)
	assert.Equal(t, "Service", resp.Taxes[0].Name)

	_, err = uc.RemoveTax("biz-1", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
