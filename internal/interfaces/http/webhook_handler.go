package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbook/gstbook-api/internal/application/billing"
	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// WebhookHandler external order intake and conversion. Intake routes are
// public but guarded by a secret path segment; listing and confirmation
// require an authenticated session.
type WebhookHandler struct {
	uc     *billing.WebhookUseCase
	secret string
}

// NewWebhookHandler builds the handler.
func NewWebhookHandler(uc *billing.WebhookUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{uc: uc, secret: secret}
}

func (h *WebhookHandler) checkSecret(c *fiber.Ctx) bool {
	if h.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Params("secret")), []byte(h.secret)) == 1
}

func (h *WebhookHandler) intake(c *fiber.Ctx, kind string) error {
	if !h.checkSecret(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	}
	var req dto.WebhookOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cannot parse request body")
	}
	order, err := h.uc.Intake(c.UserContext(), kind, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// IntakeGst POST /api/webhook/:secret/gstOrder (public)
func (h *WebhookHandler) IntakeGst(c *fiber.Ctx) error {
	return h.intake(c, entity.OrderKindGST)
}

// IntakeCash POST /api/webhook/:secret/order (public)
func (h *WebhookHandler) IntakeCash(c *fiber.Ctx) error {
	return h.intake(c, entity.OrderKindCash)
}

// ListGst GET /api/webhook/gstOrders
func (h *WebhookHandler) ListGst(c *fiber.Ctx) error {
	orders, err := h.uc.List(c.UserContext(), entity.OrderKindGST)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// ListCash GET /api/webhook/orders
func (h *WebhookHandler) ListCash(c *fiber.Ctx) error {
	orders, err := h.uc.List(c.UserContext(), entity.OrderKindCash)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// Confirm POST /api/webhook/:id/confirmOrder and /:id/confirmGstOrder.
// Converts the staged order to an invoice; the order is deleted in the
// same transaction so a repeat confirmation returns 404.
func (h *WebhookHandler) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "INVALID_BODY", "cannot parse request body")
		}
	}
	sale, err := h.uc.Confirm(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
