package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.TaxConfigRepository = (*TaxConfigRepo)(nil)

// TaxConfigRepo implements TaxConfigRepository on PostgreSQL (usable with pool
// or tx). One row per business; the tax lines live in a JSONB column.
//
// Early deployments stored a single flat object {rate, name, mode, enabled}
// instead of a list. parseTaxLines migrates that shape on read, so the rest of
// the system only ever sees the list form; the next Save rewrites the row.
type TaxConfigRepo struct {
	q Querier
}

// NewTaxConfigRepository builds the adapter. Pass pool or tx (Querier).
func NewTaxConfigRepository(q Querier) *TaxConfigRepo {
	return &TaxConfigRepo{q: q}
}

// Get returns the business tax config. A business without a stored row gets
// an empty config, not an error.
func (r *TaxConfigRepo) Get(businessID string) (*entity.TaxConfig, error) {
	query := `SELECT taxes, updated_at FROM tax_configs WHERE business_id = $1`
	var raw []byte
	config := &entity.TaxConfig{BusinessID: businessID}
	err := r.q.QueryRow(context.Background(), query, businessID).Scan(&raw, &config.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return config, nil
		}
		return nil, fmt.Errorf("get tax config: %w", err)
	}
	taxes, err := parseTaxLines(raw)
	if err != nil {
		return nil, fmt.Errorf("decode tax config: %w", err)
	}
	config.Taxes = taxes
	return config, nil
}

// Save upserts the business tax config, always in the list shape.
func (r *TaxConfigRepo) Save(config *entity.TaxConfig) error {
	raw, err := json.Marshal(config.Taxes)
	if err != nil {
		return fmt.Errorf("encode tax config: %w", err)
	}
	query := `
		INSERT INTO tax_configs (business_id, taxes, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (business_id) DO UPDATE SET taxes = EXCLUDED.taxes, updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query, config.BusinessID, raw, config.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save tax config: %w", err)
	}
	return nil
}

// legacyTaxConfig is the pre-list stored shape: one business-wide rate.
type legacyTaxConfig struct {
	Rate    decimal.Decimal `json:"rate"`
	Name    string          `json:"name"`
	Mode    string          `json:"mode"`
	Enabled bool            `json:"enabled"`
}

// parseTaxLines decodes the JSONB column, accepting both the current list
// shape and the legacy single-object shape.
func parseTaxLines(raw []byte) ([]entity.TaxLine, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var taxes []entity.TaxLine
	if err := json.Unmarshal(raw, &taxes); err == nil {
		return taxes, nil
	}
	var legacy legacyTaxConfig
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}
	name := legacy.Name
	if name == "" {
		name = "Tax"
	}
	mode := legacy.Mode
	if mode == "" {
		mode = entity.TaxModeFixed
	}
	return []entity.TaxLine{{
		ID:      uuid.New().String(),
		Name:    name,
		Rate:    legacy.Rate,
		Mode:    mode,
		Enabled: legacy.Enabled,
	}}, nil
}
