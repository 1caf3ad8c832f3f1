package dto

import "github.com/shopspring/decimal"

// CreateItemRequest new catalog item. GSTSlab is a percent (0-100); the
// CGST/SGST/IGST/Total columns are derived server-side.
type CreateItemRequest struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	HSNCode      string          `json:"hsnCode"`
	CompanyName  string          `json:"companyName"`
	ValidityDays int             `json:"validityDays"`
	Rate         decimal.Decimal `json:"rate"`
	GSTSlab      decimal.Decimal `json:"gstSlab"`
}

// ItemResponse catalog item with its derived tax columns.
type ItemResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	HSNCode      string          `json:"hsnCode"`
	CompanyName  string          `json:"companyName,omitempty"`
	ValidityDays int             `json:"validityDays,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	GSTSlab      decimal.Decimal `json:"gstSlab"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	Total        decimal.Decimal `json:"total"`
}
