package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.WhatsAppSettingsRepository = (*WhatsAppSettingsRepo)(nil)

// WhatsAppSettingsRepo implements WhatsAppSettingsRepository on PostgreSQL
// (usable with pool or tx). One row per business.
type WhatsAppSettingsRepo struct {
	q Querier
}

// NewWhatsAppSettingsRepository builds the adapter. Pass pool or tx (Querier).
func NewWhatsAppSettingsRepository(q Querier) *WhatsAppSettingsRepo {
	return &WhatsAppSettingsRepo{q: q}
}

// Get returns the business's settings; defaults when never saved.
func (r *WhatsAppSettingsRepo) Get(businessID string) (*entity.WhatsAppSettings, error) {
	query := `
		SELECT business_id, enabled, send_on_create, send_on_complete, template_create, template_complete, template_invoice, daily_count, last_reset_date
		FROM whatsapp_settings WHERE business_id = $1`
	var s entity.WhatsAppSettings
	err := r.q.QueryRow(context.Background(), query, businessID).Scan(
		&s.BusinessID, &s.Enabled, &s.SendOnCreate, &s.SendOnComplete,
		&s.TemplateCreate, &s.TemplateComplete, &s.TemplateInvoice,
		&s.DailyCount, &s.LastResetDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DefaultWhatsAppSettings(businessID), nil
		}
		return nil, fmt.Errorf("get whatsapp settings: %w", err)
	}
	return &s, nil
}

// Save upserts the business's settings including the usage counters.
func (r *WhatsAppSettingsRepo) Save(settings *entity.WhatsAppSettings) error {
	query := `
		INSERT INTO whatsapp_settings (business_id, enabled, send_on_create, send_on_complete, template_create, template_complete, template_invoice, daily_count, last_reset_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (business_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			send_on_create = EXCLUDED.send_on_create,
			send_on_complete = EXCLUDED.send_on_complete,
			template_create = EXCLUDED.template_create,
			template_complete = EXCLUDED.template_complete,
			template_invoice = EXCLUDED.template_invoice,
			daily_count = EXCLUDED.daily_count,
			last_reset_date = EXCLUDED.last_reset_date`
	_, err := r.q.Exec(context.Background(), query,
		settings.BusinessID, settings.Enabled, settings.SendOnCreate, settings.SendOnComplete,
		settings.TemplateCreate, settings.TemplateComplete, settings.TemplateInvoice,
		settings.DailyCount, settings.LastResetDate,
	)
	if err != nil {
		return fmt.Errorf("save whatsapp settings: %w", err)
	}
	return nil
}

// IncrementDailyCount bumps the day's counter in one statement so concurrent
// notifies serialize on the row and the quota can't be overshot. The DO UPDATE
// WHERE clause refuses the bump once today's count has reached the limit; a
// refused upsert returns no row, which maps to ErrDailyLimitReached. A missing
// row is created from the default settings with the first unit consumed.
func (r *WhatsAppSettingsRepo) IncrementDailyCount(businessID, today string, limit int) (int, error) {
	defaults := entity.DefaultWhatsAppSettings(businessID)
	query := `
		INSERT INTO whatsapp_settings (business_id, enabled, send_on_create, send_on_complete, template_create, template_complete, template_invoice, daily_count, last_reset_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
		ON CONFLICT (business_id) DO UPDATE SET
			daily_count = CASE WHEN whatsapp_settings.last_reset_date = $8 THEN whatsapp_settings.daily_count + 1 ELSE 1 END,
			last_reset_date = $8
		WHERE whatsapp_settings.last_reset_date <> $8 OR whatsapp_settings.daily_count < $9
		RETURNING daily_count`
	var count int
	err := r.q.QueryRow(context.Background(), query,
		businessID, defaults.Enabled, defaults.SendOnCreate, defaults.SendOnComplete,
		defaults.TemplateCreate, defaults.TemplateComplete, defaults.TemplateInvoice,
		today, limit,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrDailyLimitReached
		}
		return 0, fmt.Errorf("increment whatsapp daily count: %w", err)
	}
	return count, nil
}
