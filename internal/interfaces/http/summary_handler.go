package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/reports"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
)

// SummaryHandler the financial-year summary pivots and their spreadsheet
// downloads.
type SummaryHandler struct {
	uc       *reports.SummaryUseCase
	exporter *excel.Exporter
}

// NewSummaryHandler builds the handler.
func NewSummaryHandler(uc *reports.SummaryUseCase, exporter *excel.Exporter) *SummaryHandler {
	return &SummaryHandler{uc: uc, exporter: exporter}
}

// fyYear reads ?year= with the current financial year as default. The
// financial year runs April to March, so January-March belong to the
// previous calendar year's FY.
func fyYear(c *fiber.Ctx) int {
	now := time.Now()
	def := now.Year()
	if now.Month() < time.April {
		def--
	}
	return c.QueryInt("year", def)
}

// SalesByCustomer GET /api/gstSales/summary/customer?year=&customerId=
func (h *SummaryHandler) SalesByCustomer(c *fiber.Ctx) error {
	groups, err := h.uc.SalesByCustomer(c.UserContext(), fyYear(c), c.Query("customerId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(groups)
}

// SalesByItem GET /api/gstSales/summary/item?year=&keyword=
func (h *SummaryHandler) SalesByItem(c *fiber.Ctx) error {
	groups, err := h.uc.SalesByItem(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(groups)
}

// PurchasesByCompany GET /api/purchases/summary/company?year=&keyword=
func (h *SummaryHandler) PurchasesByCompany(c *fiber.Ctx) error {
	groups, err := h.uc.PurchasesByCompany(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(groups)
}

// ExpensesByItem GET /api/expenses/summary/item?year=&keyword=
func (h *SummaryHandler) ExpensesByItem(c *fiber.Ctx) error {
	groups, err := h.uc.ExpensesByItem(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(groups)
}

// GstVariance GET /api/gstPaid/summary?year=
func (h *SummaryHandler) GstVariance(c *fiber.Ctx) error {
	resp, err := h.uc.GstVariance(c.UserContext(), fyYear(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// DownloadSalesByCustomer POST /api/gstSales/download/summary/customer
func (h *SummaryHandler) DownloadSalesByCustomer(c *fiber.Ctx) error {
	groups, err := h.uc.SalesByCustomer(c.UserContext(), fyYear(c), c.Query("customerId"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.exporter.Grouped("Sales by Customer", groups, salesSummaryHeaders, salesSummaryRow)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Sales by Customer", "xlsx"), mimeXLSX)
}

// DownloadSalesByItem POST /api/gstSales/download/summary/item
func (h *SummaryHandler) DownloadSalesByItem(c *fiber.Ctx) error {
	groups, err := h.uc.SalesByItem(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.exporter.Grouped("Sales by Item", groups, salesSummaryHeaders, salesSummaryRow)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Sales by Item", "xlsx"), mimeXLSX)
}

// DownloadPurchasesByCompany POST /api/purchases/download/summary/company
func (h *SummaryHandler) DownloadPurchasesByCompany(c *fiber.Ctx) error {
	groups, err := h.uc.PurchasesByCompany(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.exporter.Grouped("Purchases by Company", groups, purchaseSummaryHeaders, purchaseSummaryRow)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Purchases by Company", "xlsx"), mimeXLSX)
}

// DownloadExpensesByItem POST /api/expenses/download/summary/item
func (h *SummaryHandler) DownloadExpensesByItem(c *fiber.Ctx) error {
	groups, err := h.uc.ExpensesByItem(c.UserContext(), fyYear(c), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.exporter.Grouped("Expenses by Item", groups, expenseSummaryHeaders, expenseSummaryRow)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Expenses by Item", "xlsx"), mimeXLSX)
}

var (
	salesSummaryHeaders    = []string{"Invoice No", "Date", "Qty", "Taxable", "GST", "Total"}
	purchaseSummaryHeaders = []string{"Date", "Qty", "Taxable", "GST", "Total"}
	expenseSummaryHeaders  = []string{"Date", "Qty", "Amount"}
)

func salesSummaryRow(r repository.ReportRow) []any {
	taxable, _ := r.TaxableAmount.Float64()
	gst, _ := r.GSTAmount.Float64()
	total, _ := r.Total.Float64()
	qty, _ := r.Quantity.Float64()
	return []any{r.InvoiceNumber, r.Date.Format("2006-01-02"), qty, taxable, gst, total}
}

func purchaseSummaryRow(r repository.ReportRow) []any {
	taxable, _ := r.TaxableAmount.Float64()
	gst, _ := r.GSTAmount.Float64()
	total, _ := r.Total.Float64()
	qty, _ := r.Quantity.Float64()
	return []any{r.Date.Format("2006-01-02"), qty, taxable, gst, total}
}

func expenseSummaryRow(r repository.ReportRow) []any {
	total, _ := r.Total.Float64()
	qty, _ := r.Quantity.Float64()
	return []any{r.Date.Format("2006-01-02"), qty, total}
}
