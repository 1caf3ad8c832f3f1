package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gstbook/gstbook-api/internal/application/auth"
	"github.com/gstbook/gstbook-api/internal/application/billing"
	"github.com/gstbook/gstbook-api/internal/application/reports"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	infraexcel "github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	inframail "github.com/gstbook/gstbook-api/internal/infrastructure/mail"
	infrapdf "github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
	"github.com/gstbook/gstbook-api/internal/infrastructure/postgres"
	httpRouter "github.com/gstbook/gstbook-api/internal/interfaces/http"
	"github.com/gstbook/gstbook-api/pkg/config"
	"github.com/gstbook/gstbook-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	orderRepo := postgres.NewWebhookOrderRepository(pool)
	gstPaidRepo := postgres.NewGstPaidRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceRenderer := infrapdf.NewInvoiceRenderer(cfg.GST)
	tableRenderer := infrapdf.NewTableRenderer()
	exporter := infraexcel.NewExporter()
	mailer := inframail.NewMailer(cfg.SMTP, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, itemRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, itemRepo)
	gstPaidUC := usecase.NewGstPaidUseCase(gstPaidRepo)
	saleUC := billing.NewSaleUseCase(txRunner, saleRepo, customerRepo, itemRepo, cfg.GST.HomeState)
	webhookUC := billing.NewWebhookUseCase(
		txRunner, orderRepo, customerRepo, customerUC, itemRepo,
		invoiceRenderer, mailer, cfg.GST.HomeState, log,
	)
	summaryUC := reports.NewSummaryUseCase(reportRepo, gstPaidRepo)

	app := httpRouter.NewApp(cfg.App.Name)
	httpRouter.Register(app, httpRouter.RouterDeps{
		Env:           cfg.App.Env,
		JWTSecret:     cfg.JWT.Secret,
		Auth:          httpRouter.NewAuthHandler(authUC, time.Duration(cfg.JWT.Expiration)*time.Minute),
		Customers:     httpRouter.NewCustomerHandler(customerUC, exporter, tableRenderer),
		GstItems:      httpRouter.NewItemHandler(itemUC, entity.ItemKindGST, "GST Items", exporter, tableRenderer),
		CashItems:     httpRouter.NewItemHandler(itemUC, entity.ItemKindCash, "Cash Items", exporter, tableRenderer),
		PurchaseItems: httpRouter.NewItemHandler(itemUC, entity.ItemKindPurchase, "Purchase Items", exporter, tableRenderer),
		ExpenseItems:  httpRouter.NewItemHandler(itemUC, entity.ItemKindExpense, "Expense Items", exporter, tableRenderer),
		GstSales:      httpRouter.NewSaleHandler(saleUC, entity.SeriesGST, exporter, tableRenderer, invoiceRenderer),
		CashSales:     httpRouter.NewSaleHandler(saleUC, entity.SeriesCash, exporter, tableRenderer, invoiceRenderer),
		Purchases:     httpRouter.NewPurchaseHandler(purchaseUC, exporter, tableRenderer),
		Expenses:      httpRouter.NewExpenseHandler(expenseUC, exporter, tableRenderer),
		GstPaid:       httpRouter.NewGstPaidHandler(gstPaidUC, exporter, tableRenderer),
		Summaries:     httpRouter.NewSummaryHandler(summaryUC, exporter),
		Webhooks:      httpRouter.NewWebhookHandler(webhookUC, cfg.GST.WebhookSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, draining server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
