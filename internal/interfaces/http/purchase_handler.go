package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// PurchaseHandler purchase record endpoints.
type PurchaseHandler struct {
	uc       *usecase.PurchaseUseCase
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
}

// NewPurchaseHandler builds the handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase, exporter *excel.Exporter, tables *pdf.TableRenderer) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, exporter: exporter, tables: tables}
}

// Create POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	purchase, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// List GET /api/purchases?keyword=&pageNumber=&pageSize=
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), pageRequest(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/purchases/search?keyword=
func (h *PurchaseHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

// Update PUT /api/purchases/:id
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	purchase, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

// Delete DELETE /api/purchases/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExcel POST /api/purchases/download/excel
func (h *PurchaseHandler) DownloadExcel(c *fiber.Ctx) error {
	purchases, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]any, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, purchaseExportRow(p))
	}
	data, err := h.exporter.Flat("Purchases", purchaseExportHeaders, records)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Purchases", "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/purchases/download/pdf
func (h *PurchaseHandler) DownloadPDF(c *fiber.Ctx) error {
	purchases, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		row := purchaseExportRow(p)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		records = append(records, cells)
	}
	data, err := h.tables.Render("Purchases", purchaseExportHeaders, records, pdf.TableOptions{Landscape: true})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Purchases", "pdf"), mimePDF)
}

var purchaseExportHeaders = []string{
	"Date", "Item", "Company", "HSN", "Qty", "Price", "Taxable",
	"CGST", "SGST", "Total", "Payment",
}

func purchaseExportRow(p *dto.PurchaseResponse) []any {
	return []any{
		p.Date,
		p.ItemName,
		p.CompanyName,
		p.HSNCode,
		p.Quantity,
		p.Price.String(),
		p.TaxableAmount.String(),
		p.CGST.String(),
		p.SGST.String(),
		p.Total.String(),
		p.PaymentMethod,
	}
}
