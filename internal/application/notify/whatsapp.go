// Package notify implements WhatsApp order notifications: template rendering
// and wa.me deep link building. No message is ever sent server-side; the app
// opens the link and the user sends it from their own WhatsApp.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
	"github.com/orderly-app/orderly-api/pkg/money"
)

// WhatsAppUseCase builds notification deep links and manages per-business
// notification settings, including the daily send quota.
type WhatsAppUseCase struct {
	settingsRepo repository.WhatsAppSettingsRepository
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
	dailyLimit   int
}

// NewWhatsAppUseCase builds the use case.
func NewWhatsAppUseCase(
	settingsRepo repository.WhatsAppSettingsRepository,
	orderRepo repository.OrderRepository,
	businessRepo repository.BusinessRepository,
	dailyLimit int,
) *WhatsAppUseCase {
	return &WhatsAppUseCase{
		settingsRepo: settingsRepo,
		orderRepo:    orderRepo,
		businessRepo: businessRepo,
		dailyLimit:   dailyLimit,
	}
}

// GetSettings returns the business's notification settings, defaults when
// never saved.
func (uc *WhatsAppUseCase) GetSettings(businessID string) (*dto.WhatsAppSettingsResponse, error) {
	settings, err := uc.settingsRepo.Get(businessID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// UpdateSettings replaces the editable settings; the usage counters are
// preserved so toggling settings can't reset the daily quota.
func (uc *WhatsAppUseCase) UpdateSettings(businessID string, in dto.WhatsAppSettingsRequest) (*dto.WhatsAppSettingsResponse, error) {
	settings, err := uc.settingsRepo.Get(businessID)
	if err != nil {
		return nil, err
	}
	settings.BusinessID = businessID
	settings.Enabled = in.Enabled
	settings.SendOnCreate = in.SendOnCreate
	settings.SendOnComplete = in.SendOnComplete
	settings.TemplateCreate = in.TemplateCreate
	settings.TemplateComplete = in.TemplateComplete
	settings.TemplateInvoice = in.TemplateInvoice
	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// NotifyOrder renders the template selected by kind against the order and
// returns a wa.me deep link to the customer's number. Each successful call
// consumes one unit of the daily quota, which resets on the first call of
// each calendar day.
func (uc *WhatsAppUseCase) NotifyOrder(businessID, orderID string, in dto.NotifyOrderRequest) (*dto.NotifyOrderResponse, error) {
	settings, err := uc.settingsRepo.Get(businessID)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, domain.ErrForbidden
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	phone := cleanPhone(order.WhatsAppNumber)
	if phone == "" {
		return nil, domain.ErrInvalidInput
	}

	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	var template string
	switch in.Kind {
	case "created":
		template = settings.TemplateCreate
	case "completed":
		template = settings.TemplateComplete
	case "invoice":
		template = settings.TemplateInvoice
	default:
		return nil, domain.ErrInvalidInput
	}

	// The counter bump is a single atomic repository step so concurrent
	// notifies can't both pass the check and overshoot the cap.
	if uc.dailyLimit <= 0 {
		return nil, domain.ErrDailyLimitReached
	}
	today := time.Now().Format("2006-01-02")
	count, err := uc.settingsRepo.IncrementDailyCount(businessID, today, uc.dailyLimit)
	if err != nil {
		return nil, err
	}

	itemsCount := 0
	for _, item := range order.Items {
		itemsCount += item.Quantity
	}
	message := renderTemplate(template, map[string]string{
		"customerName": order.CustomerName,
		"orderId":      shortID(order.ID),
		"total":        money.Format(business.Currency, order.Total),
		"businessName": business.Name,
		"itemsCount":   fmt.Sprintf("%d", itemsCount),
		"link":         in.Link,
	})

	return &dto.NotifyOrderResponse{
		URL:        fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message)),
		Message:    message,
		DailyCount: count,
	}, nil
}

// renderTemplate substitutes {{key}} placeholders. Unknown placeholders are
// left as-is so a typo in a custom template is visible instead of silently
// dropped.
func renderTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}

// cleanPhone strips everything but digits; wa.me links take the international
// number without plus, spaces or dashes.
func cleanPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// shortID returns the first segment of a UUID, enough to reference an order
// in a chat message.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

func toSettingsResponse(s *entity.WhatsAppSettings) *dto.WhatsAppSettingsResponse {
	return &dto.WhatsAppSettingsResponse{
		Enabled:          s.Enabled,
		SendOnCreate:     s.SendOnCreate,
		SendOnComplete:   s.SendOnComplete,
		TemplateCreate:   s.TemplateCreate,
		TemplateComplete: s.TemplateComplete,
		TemplateInvoice:  s.TemplateInvoice,
		DailyCount:       s.DailyCount,
		LastResetDate:    s.LastResetDate,
	}
}
