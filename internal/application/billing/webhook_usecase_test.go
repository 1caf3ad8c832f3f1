package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/pkg/logger"
)

type webhookFixture struct {
	uc        *WebhookUseCase
	tx        *fakeTxRunner
	customers *fakeCustomerRepo
	mailer    *fakeMailer
	renderer  *fakeRenderer
}

func newWebhookFixture(items []*entity.Item, customers []*entity.Customer) *webhookFixture {
	tx := &fakeTxRunner{
		sales:  &fakeSaleRepo{},
		seqs:   newFakeSeqRepo(),
		orders: newFakeOrderRepo(),
	}
	customerRepo := newFakeCustomerRepo(customers...)
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := NewWebhookUseCase(tx, tx.orders, customerRepo, usecase.NewCustomerUseCase(customerRepo), newFakeItemRepo(items...), renderer, mailer, homeState, log)
	return &webhookFixture{uc: uc, tx: tx, customers: customerRepo, mailer: mailer, renderer: renderer}
}

func gstOrderRequest() dto.WebhookOrderRequest {
	return dto.WebhookOrderRequest{
		BuyerName:     "Acme Traders",
		BuyerEmail:    "acme@example.com",
		PlaceOfSupply: "Maharashtra",
		Lines:         []dto.WebhookLineRequest{{ItemID: "i1", Quantity: 2}},
	}
}

func TestIntakeRejectsEmptyOrder(t *testing.T) {
	f := newWebhookFixture(nil, nil)

	_, err := f.uc.Intake(context.Background(), entity.OrderKindGST, dto.WebhookOrderRequest{
		BuyerName:  "Acme Traders",
		BuyerEmail: "acme@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestIntakeCreatesCustomerByEmail(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, nil)

	resp, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CustomerID)
	assert.Equal(t, "1000", resp.TaxableAmount.String())
	assert.Equal(t, "180", resp.GSTAmount.String())
	assert.Equal(t, "1180", resp.Total.String())

	created, err := f.customers.GetByEmail(context.Background(), "acme@example.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, resp.CustomerID)
}

func TestIntakeReusesExistingCustomer(t *testing.T) {
	existing := localCustomer()
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{existing})

	first, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)
	second, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, existing.ID, first.CustomerID)
	assert.Equal(t, existing.ID, second.CustomerID)
	assert.Len(t, f.customers.customers, 1)
}

func TestConfirmConvertsOrderExactlyOnce(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	staged, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	sale, err := f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "A1001", sale.InvoiceNumber)
	assert.Equal(t, "1180", sale.Total.String())
	assert.Len(t, f.tx.sales.sales, 1)

	_, err = f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.tx.sales.sales, 1)
}

func TestConfirmRejectsDuplicateNumberAndKeepsOrder(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	staged, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	first, err := f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{})
	require.NoError(t, err)

	staged2, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	_, err = f.uc.Confirm(context.Background(), staged2.ID, dto.ConfirmOrderRequest{InvoiceNumber: first.InvoiceNumber})
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNo)

	// The failed conversion leaves the order staged.
	remaining, err := f.uc.List(context.Background(), entity.OrderKindGST)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestConfirmSendsInvoiceEmail(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	staged, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	_, err = f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{SendEmail: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme@example.com"}, f.mailer.sent)
}

func TestConfirmEmailFailureIsNotFatal(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})
	f.mailer.fail = true

	staged, err := f.uc.Intake(context.Background(), entity.OrderKindGST, gstOrderRequest())
	require.NoError(t, err)

	sale, err := f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{SendEmail: true})
	require.NoError(t, err)
	assert.Equal(t, "A1001", sale.InvoiceNumber)
	assert.Empty(t, f.mailer.sent)
}

func TestCashOrderIntakeAndConfirm(t *testing.T) {
	f := newWebhookFixture([]*entity.Item{cashItem("i2", "Repair", "250", "18")}, nil)

	staged, err := f.uc.Intake(context.Background(), entity.OrderKindCash, dto.WebhookOrderRequest{
		BuyerName: "Walk-in",
		Lines:     []dto.WebhookLineRequest{{ItemID: "i2", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, staged.CustomerID)

	sale, err := f.uc.Confirm(context.Background(), staged.ID, dto.ConfirmOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "B1001", sale.InvoiceNumber)
	assert.Equal(t, "Walk-in", sale.BuyerName)
}
