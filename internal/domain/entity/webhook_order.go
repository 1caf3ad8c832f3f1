package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Webhook order kinds: which sale series the order converts into.
const (
	OrderKindGST  = "gst"
	OrderKindCash = "cash"
)

// WebhookOrder is an externally submitted order staged for manual review.
// Confirmation converts it into a Sale (assigning the invoice number) and
// deletes it in the same transaction, so an order is converted at most once.
type WebhookOrder struct {
	ID            string
	Kind          string
	CustomerID    string // gst orders; resolved/created by email at intake
	BuyerName     string
	BuyerEmail    string
	Lines         []WebhookOrderLine
	TaxableAmount decimal.Decimal
	GSTAmount     decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// WebhookOrderLine is one staged line; re-priced from the catalog at
// confirmation time.
type WebhookOrderLine struct {
	ID       string
	OrderID  string
	ItemID   string
	Name     string
	Quantity int
	Rate     decimal.Decimal
	GSTSlab  decimal.Decimal
}
