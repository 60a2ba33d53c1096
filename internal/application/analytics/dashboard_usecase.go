// Package analytics contains the read-only reporting use cases behind the
// dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// DashboardUseCase builds the home-screen summary for a business.
//
// Data sources: OrderRepository aggregate queries plus the catalog's low
// stock count. Everything is read-only.
type DashboardUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// GetSummary builds the DashboardSummaryResponse for the business.
//
// Four queries in parallel:
//  1. SalesTotals(today)       → TodaySales + TodayOrders
//  2. SalesTotals(this month)  → MonthSales + MonthOrders
//  3. CountByStatus(pending)   → PendingOrders
//  4. CountLowStock            → LowStockItems
func (uc *DashboardUseCase) GetSummary(ctx context.Context, businessID string) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type salesResult struct {
		total  decimal.Decimal
		orders int
		err    error
	}
	type countResult struct {
		count int
		err   error
	}

	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)
	pendingCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)

	go func() {
		total, orders, err := uc.orderRepo.SalesTotals(ctx, businessID, todayStart, todayEnd)
		todayCh <- salesResult{total, orders, err}
	}()
	go func() {
		total, orders, err := uc.orderRepo.SalesTotals(ctx, businessID, monthStart, monthEnd)
		monthCh <- salesResult{total, orders, err}
	}()
	go func() {
		count, err := uc.orderRepo.CountByStatus(ctx, businessID, "pending")
		pendingCh <- countResult{count, err}
	}()
	go func() {
		count, err := uc.productRepo.CountLowStock(businessID)
		lowStockCh <- countResult{count, err}
	}()

	today := <-todayCh
	month := <-monthCh
	pending := <-pendingCh
	lowStock := <-lowStockCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today sales: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: month sales: %w", month.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pending orders: %w", pending.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: low stock: %w", lowStock.err)
	}

	return &dto.DashboardSummaryResponse{
		TodaySales:    today.total.Round(2),
		TodayOrders:   today.orders,
		MonthSales:    month.total.Round(2),
		MonthOrders:   month.orders,
		PendingOrders: pending.count,
		LowStockItems: lowStock.count,
	}, nil
}
