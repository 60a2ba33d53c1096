package repository

import "github.com/orderly-app/orderly-api/internal/domain/entity"

// WhatsAppSettingsRepository defines the port for per-business WhatsApp
// notification settings. Get returns defaults (no error) when the business
// has never saved settings.
//
// IncrementDailyCount consumes one unit of the day's send quota in a single
// atomic step (concurrent callers must never overshoot the limit), resetting
// the counter when the stored date differs from today. It returns the new
// count, or domain.ErrDailyLimitReached when the quota is used up.
type WhatsAppSettingsRepository interface {
	Get(businessID string) (*entity.WhatsAppSettings, error)
	Save(settings *entity.WhatsAppSettings) error
	IncrementDailyCount(businessID, today string, limit int) (int, error)
}
