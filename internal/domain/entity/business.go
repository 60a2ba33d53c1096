package entity

import "time"

// Subscription plans.
const (
	PlanFree     = "free"
	PlanBusiness = "business"
	PlanPro      = "pro"
)

// Business types offered during onboarding.
const (
	BusinessTypeCafe        = "Cafe"
	BusinessTypeRetail      = "Retail"
	BusinessTypeElectronics = "Electronics"
	BusinessTypeOther       = "Other"
)

// Business is the tenant: one small business with its own catalog, orders and tax config.
type Business struct {
	ID        string
	Name      string
	Type      string
	Country   string
	Currency  string // ISO code used for display formatting
	Plan      string
	OwnerID   string
	CreatedAt time.Time
}
