package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one transaction row inside a summary pivot: the group key it
// belongs to plus the amounts the month buckets aggregate.
type ReportRow struct {
	GroupID       string          `json:"groupId"`
	GroupLabel    string          `json:"groupLabel"`
	RefID         string          `json:"refId"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	Date          time.Time       `json:"date"`
	Quantity      decimal.Decimal `json:"quantity"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	GSTAmount     decimal.Decimal `json:"gstAmount"`
	Total         decimal.Decimal `json:"total"`
}

// ReportRepository read-side queries feeding the financial-year summary
// pivots. Each method returns every matching row in [from, to) in one pass;
// grouping and month bucketing happen in the application layer.
type ReportRepository interface {
	// SalesByCustomer groups GST sale lines under the sale's customer.
	// customerID, when non-empty, restricts to that customer.
	SalesByCustomer(ctx context.Context, from, to time.Time, customerID string) ([]ReportRow, error)
	// SalesByItem groups GST sale lines under the line's HSN code.
	SalesByItem(ctx context.Context, from, to time.Time, keyword string) ([]ReportRow, error)
	// PurchasesByCompany groups purchases under the supplier company name.
	PurchasesByCompany(ctx context.Context, from, to time.Time, keyword string) ([]ReportRow, error)
	// ExpensesByItem groups expenses under the expense item.
	ExpensesByItem(ctx context.Context, from, to time.Time, keyword string) ([]ReportRow, error)
	// GstCollectedByMonth sums CGST+SGST+IGST of GST sales per month key
	// ("2025-04") within the window.
	GstCollectedByMonth(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)
}
