package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// ItemHandler catalog endpoints. One instance is registered per catalog
// kind (gst, cash, purchase, expense); the kind scopes every operation.
type ItemHandler struct {
	uc       *usecase.ItemUseCase
	kind     string
	label    string
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
}

// NewItemHandler builds a handler bound to one catalog kind. The label names
// the catalog on exported sheets, e.g. "GST Items".
func NewItemHandler(uc *usecase.ItemUseCase, kind, label string, exporter *excel.Exporter, tables *pdf.TableRenderer) *ItemHandler {
	return &ItemHandler{uc: uc, kind: kind, label: label, exporter: exporter, tables: tables}
}

// Create POST /api/<catalog>
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	item, err := h.uc.Create(c.UserContext(), h.kind, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List GET /api/<catalog>?keyword=&pageNumber=&pageSize=
func (h *ItemHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), h.kind, pageRequest(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/<catalog>/search?keyword=
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), h.kind, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/<catalog>/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.UserContext(), h.kind, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Update PUT /api/<catalog>/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	item, err := h.uc.Update(c.UserContext(), h.kind, c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Delete DELETE /api/<catalog>/:id
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), h.kind, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExcel POST /api/<catalog>/download/excel
func (h *ItemHandler) DownloadExcel(c *fiber.Ctx) error {
	items, err := h.uc.Export(c.UserContext(), h.kind, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]any, 0, len(items))
	for _, it := range items {
		records = append(records, itemExportRow(it))
	}
	data, err := h.exporter.Flat(h.label, itemExportHeaders, records)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename(h.label, "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/<catalog>/download/pdf
func (h *ItemHandler) DownloadPDF(c *fiber.Ctx) error {
	items, err := h.uc.Export(c.UserContext(), h.kind, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]string, 0, len(items))
	for _, it := range items {
		row := itemExportRow(it)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		records = append(records, cells)
	}
	data, err := h.tables.Render(h.label, itemExportHeaders, records, pdf.TableOptions{Landscape: true})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename(h.label, "pdf"), mimePDF)
}

var itemExportHeaders = []string{
	"Name", "Type", "HSN", "Company", "Rate", "GST %", "CGST", "SGST", "IGST", "Total",
}

func itemExportRow(it *dto.ItemResponse) []any {
	return []any{
		it.Name,
		it.Type,
		it.HSNCode,
		it.CompanyName,
		it.Rate.String(),
		it.GSTSlab.String(),
		it.CGST.String(),
		it.SGST.String(),
		it.IGST.String(),
		it.Total.String(),
	}
}
