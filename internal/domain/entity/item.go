package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item catalog kinds. Each kind is an independent catalog with the same
// shape; purchase items additionally carry a unique supplier company name.
const (
	ItemKindGST      = "gst"
	ItemKindCash     = "cash"
	ItemKindPurchase = "purchase"
	ItemKindExpense  = "expense"
)

// Item is a catalog entry. Identity is immutable; pricing fields are
// mutable. The CGST/SGST/IGST/Total columns are the catalog-level
// derivation of Rate and GSTSlab, recomputed on every create/update.
type Item struct {
	ID           string
	Kind         string
	Name         string
	Type         string
	HSNCode      string
	CompanyName  string // purchase items only, unique within the kind
	ValidityDays int    // 0 = no validity
	Rate         decimal.Decimal
	GSTSlab      decimal.Decimal // percent, 0-100
	CGST         decimal.Decimal
	SGST         decimal.Decimal
	IGST         decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
