package dto

import "github.com/shopspring/decimal"

// CreatePurchaseRequest new purchase against a purchase-catalog item.
// Price zero means "use the catalog rate".
type CreatePurchaseRequest struct {
	ItemID        string          `json:"itemId"`
	Date          string          `json:"date"` // 2006-01-02
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"paymentMethod"`
}

// PurchaseResponse purchase with its GST breakdown.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"itemId"`
	ItemName      string          `json:"itemName"`
	CompanyName   string          `json:"companyName"`
	HSNCode       string          `json:"hsnCode,omitempty"`
	Date          string          `json:"date"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	GSTSlab       decimal.Decimal `json:"gstSlab"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}

// CreateExpenseRequest new expense.
type CreateExpenseRequest struct {
	ItemID        string          `json:"itemId"`
	Date          string          `json:"date"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ExpenseResponse expense row.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"itemId"`
	ItemName      string          `json:"itemName"`
	Date          string          `json:"date"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}

// CreateGstPaidRequest monthly remittance record.
type CreateGstPaidRequest struct {
	Month  string          `json:"month"` // 2006-01
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

// GstPaidResponse remittance record.
type GstPaidResponse struct {
	ID     string          `json:"id"`
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}
