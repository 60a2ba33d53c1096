package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.WhatsAppSettings
}

func (r *fakeSettingsRepo) Get(businessID string) (*entity.WhatsAppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return entity.DefaultWhatsAppSettings(businessID), nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(s *entity.WhatsAppSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) IncrementDailyCount(businessID, today string, limit int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = entity.DefaultWhatsAppSettings(businessID)
	}
	if r.settings.LastResetDate != today {
		r.settings.LastResetDate = today
		r.settings.DailyCount = 0
	}
	if r.settings.DailyCount >= limit {
		return 0, domain.ErrDailyLimitReached
	}
	r.settings.DailyCount++
	return r.settings.DailyCount, nil
}

type fakeOrderRepo struct {
	order *entity.Order
}

func (r *fakeOrderRepo) Create(*entity.Order) error                 { return nil }
func (r *fakeOrderRepo) GetByID(string) (*entity.Order, error)      { return r.order, nil }
func (r *fakeOrderRepo) GetForUpdate(string) (*entity.Order, error) { return r.order, nil }
func (r *fakeOrderRepo) UpdateStatus(string, string) error          { return nil }
func (r *fakeOrderRepo) ListByBusiness(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListByDateRange(string, time.Time, time.Time, bool) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) SalesTotals(context.Context, string, time.Time, time.Time) (decimal.Decimal, int, error) {
	return decimal.Zero, 0, nil
}
func (r *fakeOrderRepo) CountByStatus(context.Context, string, string) (int, error) { return 0, nil }

type fakeBusinessRepo struct {
	business *entity.Business
}

func (r *fakeBusinessRepo) Create(*entity.Business) error            { return nil }
func (r *fakeBusinessRepo) GetByID(string) (*entity.Business, error) { return r.business, nil }
func (r *fakeBusinessRepo) Update(*entity.Business) error            { return nil }

func setup(dailyLimit int) (*WhatsAppUseCase, *fakeSettingsRepo) {
	settingsRepo := &fakeSettingsRepo{}
	orderRepo := &fakeOrderRepo{order: &entity.Order{
		ID:             "a1b2c3d4-0000-0000-0000-000000000000",
		BusinessID:     "biz-1",
		CustomerName:   "Amira",
		WhatsAppNumber: "+971 50 123-4567",
		Total:          decimal.RequireFromString("178.50"),
		Status:         entity.OrderStatusPending,
	}}
	businessRepo := &fakeBusinessRepo{business: &entity.Business{
		ID: "biz-1", Name: "Cafe Uno", Currency: "AED", Plan: entity.PlanFree,
	}}
	return NewWhatsAppUseCase(settingsRepo, orderRepo, businessRepo, dailyLimit), settingsRepo
}

func TestNotifyOrder_RendersTemplateAndLink(t *testing.T) {
	uc, _ := setup(50)

	resp, err := uc.NotifyOrder("biz-1", "a1b2c3d4-0000-0000-0000-000000000000", dto.NotifyOrderRequest{Kind: "created"})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Amira")
	assert.Contains(t, resp.Message, "A1B2C3D4")
	assert.Contains(t, resp.Message, "Cafe Uno")
	assert.Contains(t, resp.Message, "AED")
	// Phone cleaned to digits only, message URL-encoded.
	assert.Contains(t, resp.URL, "https://wa.me/971501234567?text=")
	assert.NotContains(t, resp.URL, " ")
	assert.Equal(t, 1, resp.DailyCount)
}

func TestNotifyOrder_DailyQuota(t *testing.T) {
	uc, settingsRepo := setup(2)

	for i := 0; i < 2; i++ {
		_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
		require.NoError(t, err)
	}
	_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)

	// A stale reset date counts as a new day and clears the counter.
	settingsRepo.settings.LastResetDate = "2000-01-01"
	resp, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DailyCount)
}

func TestNotifyOrder_ConcurrentNotifiesRespectQuota(t *testing.T) {
	// The quota is consumed in one atomic repository step; racing callers
	// must never push the day's count past the limit.
	uc, settingsRepo := setup(3)

	var wg sync.WaitGroup
	var sent int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"}); err == nil {
				atomic.AddInt32(&sent, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), sent)
	assert.Equal(t, 3, settingsRepo.settings.DailyCount)
}

func TestNotifyOrder_DisabledSettings(t *testing.T) {
	uc, settingsRepo := setup(50)
	settingsRepo.settings = &entity.WhatsAppSettings{BusinessID: "biz-1", Enabled: false}

	_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNotifyOrder_MissingPhone(t *testing.T) {
	uc, _ := setup(50)
	uc.orderRepo.(*fakeOrderRepo).order.WhatsAppNumber = ""

	_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNotifyOrder_UnknownKind(t *testing.T) {
	uc, _ := setup(50)

	_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateSettings_PreservesCounters(t *testing.T) {
	uc, settingsRepo := setup(50)

	_, err := uc.NotifyOrder("biz-1", "any", dto.NotifyOrderRequest{Kind: "created"})
	require.NoError(t, err)
	require.Equal(t, 1, settingsRepo.settings.DailyCount)

	resp, err := uc.UpdateSettings("biz-1", dto.WhatsAppSettingsRequest{
		Enabled:        true,
		TemplateCreate: "custom {{customerName}}",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom {{customerName}}", resp.TemplateCreate)
	assert.Equal(t, 1, resp.DailyCount)
}
