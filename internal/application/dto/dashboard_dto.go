package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse the landing widgets: sales for today and the
// current month, pending order backlog and low-stock alert count.
type DashboardSummaryResponse struct {
	TodaySales    decimal.Decimal `json:"todaySales"`
	TodayOrders   int             `json:"todayOrders"`
	MonthSales    decimal.Decimal `json:"monthSales"`
	MonthOrders   int             `json:"monthOrders"`
	PendingOrders int             `json:"pendingOrders"`
	LowStockItems int             `json:"lowStockItems"`
}
