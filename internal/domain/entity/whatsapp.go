package entity

// WhatsAppSettings controls order notifications per business. Templates use
// {{placeholder}} substitution; DailyCount/LastResetDate implement the daily
// send quota (reset on the first send of each calendar day).
type WhatsAppSettings struct {
	BusinessID       string `json:"-"`
	Enabled          bool   `json:"enabled"`
	SendOnCreate     bool   `json:"sendOnCreate"`
	SendOnComplete   bool   `json:"sendOnComplete"`
	TemplateCreate   string `json:"templateCreate"`
	TemplateComplete string `json:"templateComplete"`
	TemplateInvoice  string `json:"templateInvoice"`
	DailyCount       int    `json:"dailyCount"`
	LastResetDate    string `json:"lastResetDate"` // YYYY-MM-DD
}

// DefaultWhatsAppSettings returns the settings used before a business saves
// its own: notifications on with stock message templates.
func DefaultWhatsAppSettings(businessID string) *WhatsAppSettings {
	return &WhatsAppSettings{
		BusinessID:       businessID,
		Enabled:          true,
		SendOnCreate:     true,
		SendOnComplete:   true,
		TemplateCreate:   "Hi {{customerName}}! Your order {{orderId}} at {{businessName}} has been received. Total: {{total}}.",
		TemplateComplete: "Hi {{customerName}}! Your order {{orderId}} at {{businessName}} is ready. Total: {{total}}.",
		TemplateInvoice:  "Hi {{customerName}}! Here is your invoice from {{businessName}} for {{total}}: {{link}}",
	}
}
