package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice series. GST sales use prefix A, cash sales prefix B. Numbers are
// sequential and unique within their series.
const (
	SeriesGST  = "A"
	SeriesCash = "B"
)

// Sale is a confirmed, immutable invoice (GST or cash depending on Series).
// Cash sales have no customer record; the buyer name is stored inline.
type Sale struct {
	ID               string
	Series           string
	InvoiceNumber    string
	CustomerID       string // empty for cash sales
	BuyerName        string
	InvoiceDate      time.Time
	DueDate          time.Time
	Lines            []SaleLine
	TaxableAmount    decimal.Decimal
	CGST             decimal.Decimal
	SGST             decimal.Decimal
	IGST             decimal.Decimal
	ShippingCharges  decimal.Decimal
	Discount         decimal.Decimal
	OtherAdjustments decimal.Decimal
	Total            decimal.Decimal
	AdvancePaid      decimal.Decimal
	BalanceDue       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SaleLine is one invoice line. All derived amounts are stored as computed
// at confirmation time so historical invoices never change.
type SaleLine struct {
	ID            string
	SaleID        string
	ItemID        string
	Name          string
	HSNCode       string
	Quantity      int
	Rate          decimal.Decimal
	GSTSlab       decimal.Decimal
	TaxableAmount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	Total         decimal.Decimal
}
