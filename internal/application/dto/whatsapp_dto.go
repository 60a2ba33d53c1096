package dto

// WhatsAppSettingsRequest payload to update notification settings.
type WhatsAppSettingsRequest struct {
	Enabled          bool   `json:"enabled"`
	SendOnCreate     bool   `json:"sendOnCreate"`
	SendOnComplete   bool   `json:"sendOnComplete"`
	TemplateCreate   string `json:"templateCreate"`
	TemplateComplete string `json:"templateComplete"`
	TemplateInvoice  string `json:"templateInvoice"`
}

// WhatsAppSettingsResponse current settings plus usage.
type WhatsAppSettingsResponse struct {
	Enabled          bool   `json:"enabled"`
	SendOnCreate     bool   `json:"sendOnCreate"`
	SendOnComplete   bool   `json:"sendOnComplete"`
	TemplateCreate   string `json:"templateCreate"`
	TemplateComplete string `json:"templateComplete"`
	TemplateInvoice  string `json:"templateInvoice"`
	DailyCount       int    `json:"dailyCount"`
	LastResetDate    string `json:"lastResetDate"`
}

// NotifyOrderRequest payload to build a WhatsApp deep link for an order.
// Kind selects the template: created | completed | invoice.
type NotifyOrderRequest struct {
	Kind string `json:"kind" validate:"required,oneof=created completed invoice"`
	Link string `json:"link"`
}

// NotifyOrderResponse the rendered deep link and updated usage counter.
type NotifyOrderResponse struct {
	URL        string `json:"url"`
	Message    string `json:"message"`
	DailyCount int    `json:"dailyCount"`
}
