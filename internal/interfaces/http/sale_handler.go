package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/billing"
	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// SaleHandler invoice endpoints. One instance is registered per series:
// A (GST sales) and B (cash sales).
type SaleHandler struct {
	uc       *billing.SaleUseCase
	series   string
	label    string
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
	invoices *pdf.InvoiceRenderer
}

// NewSaleHandler builds a handler bound to one invoice series.
func NewSaleHandler(uc *billing.SaleUseCase, series string, exporter *excel.Exporter, tables *pdf.TableRenderer, invoices *pdf.InvoiceRenderer) *SaleHandler {
	label := "GST Sales"
	if series == entity.SeriesCash {
		label = "Cash Sales"
	}
	return &SaleHandler{uc: uc, series: series, label: label, exporter: exporter, tables: tables, invoices: invoices}
}

// Create POST /api/<sales>
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	sale, err := h.uc.Create(c.UserContext(), h.series, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List GET /api/<sales>?keyword=&pageNumber=&pageSize=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), h.series, pageRequest(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/<sales>/search?keyword=
func (h *SaleHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), h.series, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/<sales>/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(c.UserContext(), h.series, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale)
}

// Update PUT /api/<sales>/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	sale, err := h.uc.Update(c.UserContext(), h.series, c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale)
}

// Delete DELETE /api/<sales>/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), h.series, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InvoicePDF GET /api/<sales>/:id/invoice
func (h *SaleHandler) InvoicePDF(c *fiber.Ctx) error {
	sale, customer, err := h.uc.Entity(c.UserContext(), h.series, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.invoices.RenderInvoice(sale, customer)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, fmt.Sprintf("invoice-%s.pdf", sale.InvoiceNumber), mimePDF)
}

// DownloadExcel POST /api/<sales>/download/excel
func (h *SaleHandler) DownloadExcel(c *fiber.Ctx) error {
	sales, err := h.uc.Export(c.UserContext(), h.series, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.exporter.Flat(h.label, saleExportHeaders, saleExportRows(sales))
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename(h.label, "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/<sales>/download/pdf
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	sales, err := h.uc.Export(c.UserContext(), h.series, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]string, 0, len(sales))
	for _, row := range saleExportRows(sales) {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		records = append(records, cells)
	}
	data, err := h.tables.Render(h.label, saleExportHeaders, records, pdf.TableOptions{Landscape: true, Scale: 0.9})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename(h.label, "pdf"), mimePDF)
}

var saleExportHeaders = []string{
	"Invoice No", "Date", "Buyer", "Item", "HSN", "Qty", "Rate",
	"Taxable", "CGST", "SGST", "IGST", "Line Total",
}

// saleExportRows flattens invoices into one row per line; invoice-level
// columns repeat on each of its lines.
func saleExportRows(sales []*entity.Sale) [][]any {
	records := make([][]any, 0, len(sales))
	for _, s := range sales {
		for _, l := range s.Lines {
			records = append(records, []any{
				s.InvoiceNumber,
				s.InvoiceDate.Format("2006-01-02"),
				s.BuyerName,
				l.Name,
				l.HSNCode,
				l.Quantity,
				l.Rate.String(),
				l.TaxableAmount.String(),
				l.CGST.String(),
				l.SGST.String(),
				l.IGST.String(),
				l.Total.String(),
			})
		}
	}
	return records
}

// exportFilename slugifies the label and stamps today's date.
func exportFilename(label, ext string) string {
	slug := make([]rune, 0, len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug = append(slug, r)
		case r >= 'A' && r <= 'Z':
			slug = append(slug, r+('a'-'A'))
		default:
			slug = append(slug, '-')
		}
	}
	return fmt.Sprintf("%s-%s.%s", string(slug), time.Now().Format("2006-01-02"), ext)
}
