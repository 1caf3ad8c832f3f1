package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

const homeState = "Maharashtra"

func newSaleFixture(items []*entity.Item, customers []*entity.Customer) (*SaleUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{
		sales:  &fakeSaleRepo{},
		seqs:   newFakeSeqRepo(),
		orders: newFakeOrderRepo(),
	}
	uc := NewSaleUseCase(tx, tx.sales, newFakeCustomerRepo(customers...), newFakeItemRepo(items...), homeState)
	return uc, tx
}

func localCustomer() *entity.Customer {
	return &entity.Customer{ID: "c1", Name: "Acme Traders", Email: "acme@example.com", PlaceOfSupply: "Maharashtra"}
}

func TestCreateSaleAssignsFirstNumberInSeries(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	resp, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c1",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A1001", resp.InvoiceNumber)
}

func TestCreateSaleNumbersAreMonotonic(t *testing.T) {
	uc, tx := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})
	tx.seqs.counters[entity.SeriesGST] = 1042

	resp, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c1",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A1043", resp.InvoiceNumber)
}

func TestCreateSaleIntraStateSplit(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	resp, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c1",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "1000", resp.TaxableAmount.String())
	assert.Equal(t, "90", resp.CGST.String())
	assert.Equal(t, "90", resp.SGST.String())
	assert.True(t, resp.IGST.IsZero())
	assert.Equal(t, "1180", resp.Total.String())
	assert.Equal(t, "1180", resp.BalanceDue.String())
}

func TestCreateSaleInterStateUsesIGST(t *testing.T) {
	customer := &entity.Customer{ID: "c2", Name: "South Supplies", Email: "south@example.com", PlaceOfSupply: "Karnataka"}
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{customer})

	resp, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c2",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.True(t, resp.CGST.IsZero())
	assert.True(t, resp.SGST.IsZero())
	assert.Equal(t, "180", resp.IGST.String())
	assert.Equal(t, "1180", resp.Total.String())
}

func TestCreateSaleTotalIdentityWithCharges(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	resp, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID:       "c1",
		Lines:            []dto.SaleLineRequest{{ItemID: "i1", Quantity: 2}},
		ShippingCharges:  dec("50"),
		Discount:         dec("30"),
		OtherAdjustments: dec("0.25"),
		AdvancePaid:      dec("200"),
	})
	require.NoError(t, err)
	// 1000 + 180 + 50 - 30 + 0.25
	assert.Equal(t, "1200.25", resp.Total.String())
	assert.Equal(t, "1000.25", resp.BalanceDue.String())
}

func TestCreateSaleRejectsDuplicateInvoiceNumber(t *testing.T) {
	uc, tx := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	_, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c1",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		InvoiceNumber: "A1001",
		CustomerID:    "c1",
		Lines:         []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNo)
	assert.Len(t, tx.sales.sales, 1)
}

func TestCreateSaleRejectsNumberFromWrongSeries(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	_, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		InvoiceNumber: "B1001",
		CustomerID:    "c1",
		Lines:         []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSaleZeroRateIsDataError(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Freebie", "0", "18")}, []*entity.Customer{localCustomer()})

	_, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
		CustomerID: "c1",
		Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSaleRejectsEmptyLines(t *testing.T) {
	uc, _ := newSaleFixture(nil, []*entity.Customer{localCustomer()})

	_, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{CustomerID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCashSale(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{cashItem("i2", "Repair", "250", "18")}, nil)

	resp, err := uc.Create(context.Background(), entity.SeriesCash, dto.CreateSaleRequest{
		BuyerName: "Walk-in",
		Lines:     []dto.SaleLineRequest{{ItemID: "i2", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "B1001", resp.InvoiceNumber)
	assert.Equal(t, "22.5", resp.CGST.String())
	assert.Equal(t, "22.5", resp.SGST.String())
	assert.Equal(t, "295", resp.Total.String())
}

func TestCreateCashSaleRequiresBuyerName(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{cashItem("i2", "Repair", "250", "18")}, nil)

	_, err := uc.Create(context.Background(), entity.SeriesCash, dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ItemID: "i2", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListSalesPagination(t *testing.T) {
	uc, _ := newSaleFixture([]*entity.Item{gstItem("i1", "Consulting", "500", "18")}, []*entity.Customer{localCustomer()})

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), entity.SeriesGST, dto.CreateSaleRequest{
			CustomerID: "c1",
			Lines:      []dto.SaleLineRequest{{ItemID: "i1", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	page, err := uc.List(context.Background(), entity.SeriesGST, dto.PageRequest{PageNumber: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 2)

	beyond, err := uc.List(context.Background(), entity.SeriesGST, dto.PageRequest{PageNumber: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 3, beyond.Total)
}
