package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/orderly-app/orderly-api/internal/application/analytics"
	"github.com/orderly-app/orderly-api/internal/application/auth"
	"github.com/orderly-app/orderly-api/internal/application/invoices"
	"github.com/orderly-app/orderly-api/internal/application/notify"
	"github.com/orderly-app/orderly-api/internal/application/orders"
	"github.com/orderly-app/orderly-api/internal/application/usecase"
	"github.com/orderly-app/orderly-api/internal/infrastructure/export"
	infrapdf "github.com/orderly-app/orderly-api/internal/infrastructure/pdf"
	"github.com/orderly-app/orderly-api/internal/infrastructure/postgres"
	httpRouter "github.com/orderly-app/orderly-api/internal/interfaces/http"
	"github.com/orderly-app/orderly-api/pkg/config"
	"github.com/orderly-app/orderly-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	taxConfigRepo := postgres.NewTaxConfigRepository(pool)
	invoiceRepo := postgres.NewInvoiceRecordRepository(pool)
	whatsappRepo := postgres.NewWhatsAppSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, businessRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	taxUC := usecase.NewTaxConfigUseCase(taxConfigRepo)
	createOrderUC := orders.NewCreateOrderUseCase(productRepo, taxConfigRepo, txRunner)
	orderStatusUC := orders.NewOrderStatusUseCase(orderRepo, txRunner)
	orderQueryUC := orders.NewOrderQueryUseCase(orderRepo)

	// Invoice summary exports: PDF via Maroto, "excel" as spreadsheet CSV.
	generators := map[string]invoices.DocumentGenerator{
		"pdf":   infrapdf.NewInvoiceSummaryGenerator(),
		"excel": export.NewCSVGenerator(),
	}
	invoiceUC := invoices.NewExportUseCase(orderRepo, invoiceRepo, businessRepo, generators, invoices.Quotas{
		FreePerMonth:     cfg.Limits.FreeExportsPerMonth,
		BusinessPerMonth: cfg.Limits.BusinessExportsPerMonth,
	})

	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo, productRepo)
	whatsappUC := notify.NewWhatsAppUseCase(whatsappRepo, orderRepo, businessRepo, cfg.Limits.WhatsAppPerDay)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Orderly API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		TaxUC:       taxUC,
		CreateOrder: createOrderUC,
		OrderStatus: orderStatusUC,
		OrderQuery:  orderQueryUC,
		InvoiceUC:   invoiceUC,
		DashboardUC: dashboardUC,
		WhatsAppUC:  whatsappUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
