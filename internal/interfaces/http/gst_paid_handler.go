package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// GstPaidHandler monthly GST remittance records.
type GstPaidHandler struct {
	uc       *usecase.GstPaidUseCase
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
}

// NewGstPaidHandler builds the handler.
func NewGstPaidHandler(uc *usecase.GstPaidUseCase, exporter *excel.Exporter, tables *pdf.TableRenderer) *GstPaidHandler {
	return &GstPaidHandler{uc: uc, exporter: exporter, tables: tables}
}

// Create POST /api/gstPaid
func (h *GstPaidHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGstPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	record, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// List GET /api/gstPaid?year=
func (h *GstPaidHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.ListForYear(c.UserContext(), fyYear(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}

// Update PUT /api/gstPaid/:id
func (h *GstPaidHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateGstPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	record, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

// Delete DELETE /api/gstPaid/:id
func (h *GstPaidHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExcel POST /api/gstPaid/download/excel?year=
func (h *GstPaidHandler) DownloadExcel(c *fiber.Ctx) error {
	records, err := h.uc.ListForYear(c.UserContext(), fyYear(c))
	if err != nil {
		return fail(c, err)
	}
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, gstPaidExportRow(r))
	}
	data, err := h.exporter.Flat("GST Paid", gstPaidExportHeaders, rows)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("GST Paid", "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/gstPaid/download/pdf?year=
func (h *GstPaidHandler) DownloadPDF(c *fiber.Ctx) error {
	records, err := h.uc.ListForYear(c.UserContext(), fyYear(c))
	if err != nil {
		return fail(c, err)
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := gstPaidExportRow(r)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		rows = append(rows, cells)
	}
	data, err := h.tables.Render("GST Paid", gstPaidExportHeaders, rows, pdf.TableOptions{})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("GST Paid", "pdf"), mimePDF)
}

var gstPaidExportHeaders = []string{"Month", "Amount", "Notes"}

func gstPaidExportRow(r *dto.GstPaidResponse) []any {
	return []any{r.Month, r.Amount.String(), r.Notes}
}
