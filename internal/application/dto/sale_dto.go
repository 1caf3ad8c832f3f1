package dto

import "github.com/shopspring/decimal"

// SaleLineRequest one invoice line. Rate zero means "use the catalog rate".
type SaleLineRequest struct {
	ItemID   string          `json:"itemId"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
}

// CreateSaleRequest new sale. InvoiceNumber empty means auto-assign the
// next number in the series.
type CreateSaleRequest struct {
	InvoiceNumber    string            `json:"invoiceNumber"`
	CustomerID       string            `json:"customerId"`
	BuyerName        string            `json:"buyerName"`
	InvoiceDate      string            `json:"invoiceDate"` // 2006-01-02
	DueDate          string            `json:"dueDate"`
	Lines            []SaleLineRequest `json:"lines"`
	ShippingCharges  decimal.Decimal   `json:"shippingCharges"`
	Discount         decimal.Decimal   `json:"discount"`
	OtherAdjustments decimal.Decimal   `json:"otherAdjustments"`
	AdvancePaid      decimal.Decimal   `json:"advancePaid"`
}

// SaleLineResponse invoice line with stored derivations.
type SaleLineResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"itemId"`
	Name          string          `json:"name"`
	HSNCode       string          `json:"hsnCode,omitempty"`
	Quantity      int             `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	GSTSlab       decimal.Decimal `json:"gstSlab"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	Total         decimal.Decimal `json:"total"`
}

// SaleResponse full invoice representation.
type SaleResponse struct {
	ID               string             `json:"id"`
	Series           string             `json:"series"`
	InvoiceNumber    string             `json:"invoiceNumber"`
	CustomerID       string             `json:"customerId,omitempty"`
	BuyerName        string             `json:"buyerName"`
	InvoiceDate      string             `json:"invoiceDate"`
	DueDate          string             `json:"dueDate,omitempty"`
	Lines            []SaleLineResponse `json:"lines"`
	TaxableAmount    decimal.Decimal    `json:"taxableAmount"`
	CGST             decimal.Decimal    `json:"cgst"`
	SGST             decimal.Decimal    `json:"sgst"`
	IGST             decimal.Decimal    `json:"igst"`
	ShippingCharges  decimal.Decimal    `json:"shippingCharges"`
	Discount         decimal.Decimal    `json:"discount"`
	OtherAdjustments decimal.Decimal    `json:"otherAdjustments"`
	Total            decimal.Decimal    `json:"total"`
	AdvancePaid      decimal.Decimal    `json:"advancePaid"`
	BalanceDue       decimal.Decimal    `json:"balanceDue"`
}
