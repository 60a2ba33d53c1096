package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orderly-app/orderly-api/internal/application/analytics"
	"github.com/orderly-app/orderly-api/internal/application/auth"
	"github.com/orderly-app/orderly-api/internal/application/invoices"
	"github.com/orderly-app/orderly-api/internal/application/notify"
	"github.com/orderly-app/orderly-api/internal/application/orders"
	"github.com/orderly-app/orderly-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	TaxUC       *usecase.TaxConfigUseCase
	CreateOrder *orders.CreateOrderUseCase
	OrderStatus *orders.OrderStatusUseCase
	OrderQuery  *orders.OrderQueryUseCase
	InvoiceUC   *invoices.ExportUseCase
	DashboardUC *analytics.DashboardUseCase
	WhatsAppUC  *notify.WhatsAppUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Session
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/staff", RequireRole("admin"), authHandler.AddStaff)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole("admin"), productHandler.Delete)

	// Tax configuration (mutations are admin only)
	taxes := protected.Group("/taxes")
	taxHandler := NewTaxHandler(deps.TaxUC)
	taxes.Get("/", taxHandler.Get)
	taxes.Post("/", RequireRole("admin"), taxHandler.AddTax)
	taxes.Put("/:id", RequireRole("admin"), taxHandler.UpdateTax)
	taxes.Delete("/:id", RequireRole("admin"), taxHandler.RemoveTax)

	// Orders
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderStatus, deps.OrderQuery)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)

	// Invoice exports
	invoicesGroup := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoicesGroup.Post("/export", invoiceHandler.Export)
	invoicesGroup.Get("/", invoiceHandler.History)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// WhatsApp
	whatsapp := protected.Group("/whatsapp")
	whatsappHandler := NewWhatsAppHandler(deps.WhatsAppUC)
	whatsapp.Get("/settings", whatsappHandler.GetSettings)
	whatsapp.Put("/settings", RequireRole("admin"), whatsappHandler.UpdateSettings)
	whatsapp.Post("/orders/:id/notify", whatsappHandler.NotifyOrder)
}
