package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// ExpenseHandler expense record endpoints.
type ExpenseHandler struct {
	uc       *usecase.ExpenseUseCase
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
}

// NewExpenseHandler builds the handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, exporter *excel.Exporter, tables *pdf.TableRenderer) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, exporter: exporter, tables: tables}
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	expense, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// List GET /api/expenses?keyword=&pageNumber=&pageSize=
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), pageRequest(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/expenses/search?keyword=
func (h *ExpenseHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	expense, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expense)
}

// Update PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	expense, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expense)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExcel POST /api/expenses/download/excel
func (h *ExpenseHandler) DownloadExcel(c *fiber.Ctx) error {
	expenses, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, expenseExportRow(e))
	}
	data, err := h.exporter.Flat("Expenses", expenseExportHeaders, records)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Expenses", "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/expenses/download/pdf
func (h *ExpenseHandler) DownloadPDF(c *fiber.Ctx) error {
	expenses, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		row := expenseExportRow(e)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		records = append(records, cells)
	}
	data, err := h.tables.Render("Expenses", expenseExportHeaders, records, pdf.TableOptions{})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Expenses", "pdf"), mimePDF)
}

var expenseExportHeaders = []string{
	"Date", "Item", "Qty", "Price", "Total", "Payment",
}

func expenseExportRow(e *dto.ExpenseResponse) []any {
	return []any{
		e.Date,
		e.ItemName,
		e.Quantity,
		e.Price.String(),
		e.Total.String(),
		e.PaymentMethod,
	}
}
