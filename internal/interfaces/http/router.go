package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RouterDeps everything the route table needs.
type RouterDeps struct {
	Env       string
	JWTSecret string

	Auth          *AuthHandler
	Customers     *CustomerHandler
	GstItems      *ItemHandler
	CashItems     *ItemHandler
	PurchaseItems *ItemHandler
	ExpenseItems  *ItemHandler
	GstSales      *SaleHandler
	CashSales     *SaleHandler
	Purchases     *PurchaseHandler
	Expenses      *ExpenseHandler
	GstPaid       *GstPaidHandler
	Summaries     *SummaryHandler
	Webhooks      *WebhookHandler
}

// NewApp builds the Fiber application with the global middleware.
func NewApp(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New())
	return app
}

// Register wires the route table. Authenticated users can read everything;
// mutations and downloads require the admin flag.
func Register(app *fiber.App, deps RouterDeps) {
	verboseErrors = deps.Env == "development"

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Login is rate limited per client IP.
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	})

	users := api.Group("/users")
	users.Post("/login", loginLimiter, deps.Auth.Login)
	users.Post("/logout", deps.Auth.Logout)

	// Public intake routes, guarded by the secret path segment.
	webhook := api.Group("/webhook")
	webhook.Post("/:secret/gstOrder", deps.Webhooks.IntakeGst)
	webhook.Post("/:secret/order", deps.Webhooks.IntakeCash)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireAdmin()

	// User administration is admin-only.
	admin := protected.Group("/users", adminOnly)
	admin.Get("/", deps.Auth.ListUsers)
	admin.Post("/", deps.Auth.CreateUser)
	admin.Post("/update/:id", deps.Auth.UpdateUser)
	admin.Delete("/:id", deps.Auth.DeleteUser)

	customers := protected.Group("/customers")
	customers.Post("/download/excel", adminOnly, deps.Customers.DownloadExcel)
	customers.Post("/download/pdf", adminOnly, deps.Customers.DownloadPDF)
	customers.Get("/search", deps.Customers.Search)
	customers.Get("/", deps.Customers.List)
	customers.Post("/", adminOnly, deps.Customers.Create)
	customers.Get("/:id", deps.Customers.GetByID)
	customers.Put("/:id", adminOnly, deps.Customers.Update)
	customers.Delete("/:id", adminOnly, deps.Customers.Delete)

	registerItems(protected, "/gstItems", deps.GstItems, adminOnly)
	registerItems(protected, "/cashItems", deps.CashItems, adminOnly)
	registerItems(protected, "/purchaseItems", deps.PurchaseItems, adminOnly)
	registerItems(protected, "/expenseItems", deps.ExpenseItems, adminOnly)

	gstSales := protected.Group("/gstSales")
	gstSales.Get("/summary/customer", deps.Summaries.SalesByCustomer)
	gstSales.Get("/summary/item", deps.Summaries.SalesByItem)
	gstSales.Post("/download/summary/customer", adminOnly, deps.Summaries.DownloadSalesByCustomer)
	gstSales.Post("/download/summary/item", adminOnly, deps.Summaries.DownloadSalesByItem)
	registerSales(gstSales, deps.GstSales, adminOnly)

	cashSales := protected.Group("/cashSales")
	registerSales(cashSales, deps.CashSales, adminOnly)

	purchases := protected.Group("/purchases")
	purchases.Get("/summary/company", deps.Summaries.PurchasesByCompany)
	purchases.Post("/download/summary/company", adminOnly, deps.Summaries.DownloadPurchasesByCompany)
	purchases.Post("/download/excel", adminOnly, deps.Purchases.DownloadExcel)
	purchases.Post("/download/pdf", adminOnly, deps.Purchases.DownloadPDF)
	purchases.Get("/search", deps.Purchases.Search)
	purchases.Get("/", deps.Purchases.List)
	purchases.Post("/", adminOnly, deps.Purchases.Create)
	purchases.Get("/:id", deps.Purchases.GetByID)
	purchases.Put("/:id", adminOnly, deps.Purchases.Update)
	purchases.Delete("/:id", adminOnly, deps.Purchases.Delete)

	expenses := protected.Group("/expenses")
	expenses.Get("/summary/item", deps.Summaries.ExpensesByItem)
	expenses.Post("/download/summary/item", adminOnly, deps.Summaries.DownloadExpensesByItem)
	expenses.Post("/download/excel", adminOnly, deps.Expenses.DownloadExcel)
	expenses.Post("/download/pdf", adminOnly, deps.Expenses.DownloadPDF)
	expenses.Get("/search", deps.Expenses.Search)
	expenses.Get("/", deps.Expenses.List)
	expenses.Post("/", adminOnly, deps.Expenses.Create)
	expenses.Get("/:id", deps.Expenses.GetByID)
	expenses.Put("/:id", adminOnly, deps.Expenses.Update)
	expenses.Delete("/:id", adminOnly, deps.Expenses.Delete)

	gstPaid := protected.Group("/gstPaid")
	gstPaid.Get("/summary", deps.Summaries.GstVariance)
	gstPaid.Post("/download/excel", adminOnly, deps.GstPaid.DownloadExcel)
	gstPaid.Post("/download/pdf", adminOnly, deps.GstPaid.DownloadPDF)
	gstPaid.Get("/", deps.GstPaid.List)
	gstPaid.Post("/", adminOnly, deps.GstPaid.Create)
	gstPaid.Put("/:id", adminOnly, deps.GstPaid.Update)
	gstPaid.Delete("/:id", adminOnly, deps.GstPaid.Delete)

	orders := protected.Group("/webhook", adminOnly)
	orders.Get("/gstOrder", deps.Webhooks.ListGst)
	orders.Get("/order", deps.Webhooks.ListCash)
	orders.Post("/:id/confirmGstOrder", deps.Webhooks.Confirm)
	orders.Post("/:id/confirmOrder", deps.Webhooks.Confirm)
}

func registerItems(r fiber.Router, prefix string, h *ItemHandler, adminOnly fiber.Handler) {
	g := r.Group(prefix)
	g.Post("/download/excel", adminOnly, h.DownloadExcel)
	g.Post("/download/pdf", adminOnly, h.DownloadPDF)
	g.Get("/search", h.Search)
	g.Get("/", h.List)
	g.Post("/", adminOnly, h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", adminOnly, h.Update)
	g.Delete("/:id", adminOnly, h.Delete)
}

func registerSales(g fiber.Router, h *SaleHandler, adminOnly fiber.Handler) {
	g.Post("/download/excel", adminOnly, h.DownloadExcel)
	g.Post("/download/pdf", adminOnly, h.DownloadPDF)
	g.Get("/search", h.Search)
	g.Get("/", h.List)
	g.Post("/", adminOnly, h.Create)
	g.Get("/:id/invoice", h.InvoicePDF)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", adminOnly, h.Update)
	g.Delete("/:id", adminOnly, h.Delete)
}
