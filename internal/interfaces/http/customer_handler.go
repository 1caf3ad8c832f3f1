package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

// CustomerHandler customer master data endpoints.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	exporter *excel.Exporter
	tables   *pdf.TableRenderer
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, exporter *excel.Exporter, tables *pdf.TableRenderer) *CustomerHandler {
	return &CustomerHandler{uc: uc, exporter: exporter, tables: tables}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	customer, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?keyword=&pageNumber=&pageSize=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), pageRequest(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/customers/search?keyword=
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	customer, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExcel POST /api/customers/download/excel
func (h *CustomerHandler) DownloadExcel(c *fiber.Ctx) error {
	customers, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]any, 0, len(customers))
	for _, cu := range customers {
		records = append(records, customerExportRow(cu))
	}
	data, err := h.exporter.Flat("Customers", customerExportHeaders, records)
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Customers", "xlsx"), mimeXLSX)
}

// DownloadPDF POST /api/customers/download/pdf
func (h *CustomerHandler) DownloadPDF(c *fiber.Ctx) error {
	customers, err := h.uc.Export(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}
	records := make([][]string, 0, len(customers))
	for _, cu := range customers {
		row := customerExportRow(cu)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		records = append(records, cells)
	}
	data, err := h.tables.Render("Customers", customerExportHeaders, records, pdf.TableOptions{Landscape: true})
	if err != nil {
		return fail(c, err)
	}
	return sendAttachment(c, data, exportFilename("Customers", "pdf"), mimePDF)
}

var customerExportHeaders = []string{
	"Name", "Type", "Email", "Phone", "GST Number", "Place of Supply", "Billing Address",
}

func customerExportRow(cu *dto.CustomerResponse) []any {
	return []any{
		cu.Name,
		cu.Type,
		cu.Email,
		cu.Phone,
		cu.GSTNumber,
		cu.PlaceOfSupply,
		cu.BillingAddress,
	}
}
