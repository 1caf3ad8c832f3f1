package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/infrastructure/excel"
	"github.com/gstbook/gstbook-api/internal/infrastructure/pdf"
)

type exportCustomerRepo struct{ customers []*entity.Customer }

func (r *exportCustomerRepo) Create(_ context.Context, c *entity.Customer) error { return nil }
func (r *exportCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return nil, nil
}
func (r *exportCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}
func (r *exportCustomerRepo) List(_ context.Context, keyword string, limit, offset int) ([]*entity.Customer, int, error) {
	return r.customers, len(r.customers), nil
}
func (r *exportCustomerRepo) Search(_ context.Context, keyword string, limit int) ([]*entity.Customer, error) {
	return r.customers, nil
}
func (r *exportCustomerRepo) Update(_ context.Context, c *entity.Customer) error { return nil }
func (r *exportCustomerRepo) Delete(_ context.Context, id string) error          { return nil }

type exportItemRepo struct{ items []*entity.Item }

func (r *exportItemRepo) Create(_ context.Context, item *entity.Item) error { return nil }
func (r *exportItemRepo) GetByID(_ context.Context, kind, id string) (*entity.Item, error) {
	return nil, nil
}
func (r *exportItemRepo) GetByCompanyName(_ context.Context, kind, companyName string) (*entity.Item, error) {
	return nil, nil
}
func (r *exportItemRepo) List(_ context.Context, kind, keyword string, limit, offset int) ([]*entity.Item, int, error) {
	return r.items, len(r.items), nil
}
func (r *exportItemRepo) Search(_ context.Context, kind, keyword string, limit int) ([]*entity.Item, error) {
	return r.items, nil
}
func (r *exportItemRepo) Update(_ context.Context, item *entity.Item) error { return nil }
func (r *exportItemRepo) Delete(_ context.Context, kind, id string) error   { return nil }

type exportGstPaidRepo struct{ records []*entity.GstPaid }

func (r *exportGstPaidRepo) Create(_ context.Context, rec *entity.GstPaid) error { return nil }
func (r *exportGstPaidRepo) GetByID(_ context.Context, id string) (*entity.GstPaid, error) {
	return nil, nil
}
func (r *exportGstPaidRepo) ListByMonths(_ context.Context, fromMonth, toMonth string) ([]*entity.GstPaid, error) {
	return r.records, nil
}
func (r *exportGstPaidRepo) Update(_ context.Context, rec *entity.GstPaid) error { return nil }
func (r *exportGstPaidRepo) Delete(_ context.Context, id string) error           { return nil }

func download(t *testing.T, app *fiber.App, path string) (string, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", path, nil), 30000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.Header.Get(fiber.HeaderContentType), body
}

func TestCustomerDownloads(t *testing.T) {
	repo := &exportCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", Name: "Acme Traders", Email: "acme@example.com", PlaceOfSupply: "Maharashtra"},
	}}
	h := NewCustomerHandler(usecase.NewCustomerUseCase(repo), excel.NewExporter(), pdf.NewTableRenderer())
	app := fiber.New()
	app.Post("/customers/download/excel", h.DownloadExcel)
	app.Post("/customers/download/pdf", h.DownloadPDF)

	ct, body := download(t, app, "/customers/download/excel")
	assert.Equal(t, mimeXLSX, ct)
	assert.True(t, strings.HasPrefix(string(body), "PK"), "xlsx payload is a zip archive")

	ct, body = download(t, app, "/customers/download/pdf")
	assert.Equal(t, mimePDF, ct)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestItemCatalogDownloads(t *testing.T) {
	repo := &exportItemRepo{items: []*entity.Item{
		{ID: "i1", Kind: entity.ItemKindGST, Name: "Consulting", HSNCode: "9983",
			Rate: decimal.NewFromInt(500), GSTSlab: decimal.NewFromInt(18)},
	}}
	h := NewItemHandler(usecase.NewItemUseCase(repo), entity.ItemKindGST, "GST Items", excel.NewExporter(), pdf.NewTableRenderer())
	app := fiber.New()
	app.Post("/gstItems/download/excel", h.DownloadExcel)
	app.Post("/gstItems/download/pdf", h.DownloadPDF)

	ct, body := download(t, app, "/gstItems/download/excel")
	assert.Equal(t, mimeXLSX, ct)
	assert.True(t, strings.HasPrefix(string(body), "PK"))

	ct, body = download(t, app, "/gstItems/download/pdf")
	assert.Equal(t, mimePDF, ct)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestGstPaidDownloads(t *testing.T) {
	repo := &exportGstPaidRepo{records: []*entity.GstPaid{
		{ID: "g1", Month: "2025-04", Amount: decimal.NewFromInt(12000), Notes: "Q1"},
	}}
	h := NewGstPaidHandler(usecase.NewGstPaidUseCase(repo), excel.NewExporter(), pdf.NewTableRenderer())
	app := fiber.New()
	app.Post("/gstPaid/download/excel", h.DownloadExcel)
	app.Post("/gstPaid/download/pdf", h.DownloadPDF)

	ct, body := download(t, app, "/gstPaid/download/excel?year=2025")
	assert.Equal(t, mimeXLSX, ct)
	assert.True(t, strings.HasPrefix(string(body), "PK"))

	ct, body = download(t, app, "/gstPaid/download/pdf?year=2025")
	assert.Equal(t, mimePDF, ct)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}
