package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
)

func failApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fail(c, err)
	})
	return app
}

func errorBody(t *testing.T, app *fiber.App) (int, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFailValidationErrorListsFields(t *testing.T) {
	status, body := errorBody(t, failApp(&domain.ValidationError{Fields: []domain.FieldError{
		{Field: "name", Reason: "required"},
		{Field: "rate", Reason: "must be positive"},
	}}))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "invalid input: name: required; rate: must be positive", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "required", body.Errors[0].Reason)
	assert.Equal(t, "rate", body.Errors[1].Field)
}

func TestFailSingleFieldValidation(t *testing.T) {
	status, body := errorBody(t, failApp(domain.Invalid("month", "must be YYYY-MM")))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "invalid input: month: must be YYYY-MM", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "month", body.Errors[0].Field)
}

func TestFailBareInvalidInputHasNoFieldList(t *testing.T) {
	status, body := errorBody(t, failApp(domain.ErrInvalidInput))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Empty(t, body.Errors)
}

func TestFailNotFound(t *testing.T) {
	status, body := errorBody(t, failApp(domain.ErrNotFound))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
