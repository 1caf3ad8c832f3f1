package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a recorded inward supply against a purchase-catalog item.
type Purchase struct {
	ID            string
	ItemID        string
	ItemName      string
	CompanyName   string
	HSNCode       string
	Date          time.Time
	Quantity      int
	Price         decimal.Decimal
	GSTSlab       decimal.Decimal
	TaxableAmount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expense is a recorded business expense against an expense-catalog item.
// Expenses carry no GST breakdown.
type Expense struct {
	ID            string
	ItemID        string
	ItemName      string
	Date          time.Time
	Quantity      int
	Price         decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
