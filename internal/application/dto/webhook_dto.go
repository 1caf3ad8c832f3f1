package dto

import "github.com/shopspring/decimal"

// WebhookLineRequest one line of an externally submitted order.
type WebhookLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// WebhookOrderRequest external order payload. For GST orders the customer
// is resolved (or created) by email; cash orders only need the buyer name.
type WebhookOrderRequest struct {
	BuyerName       string               `json:"buyerName"`
	BuyerEmail      string               `json:"buyerEmail"`
	Phone           string               `json:"phone"`
	GSTNumber       string               `json:"gstNumber"`
	PlaceOfSupply   string               `json:"placeOfSupply"`
	BillingAddress  string               `json:"billingAddress"`
	ShippingAddress string               `json:"shippingAddress"`
	Lines           []WebhookLineRequest `json:"lines"`
}

// ConfirmOrderRequest conversion options. InvoiceNumber empty means
// auto-assign; SendEmail requests an invoice PDF mail after commit.
type ConfirmOrderRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
	SendEmail     bool   `json:"sendEmail"`
}

// WebhookOrderLineResponse staged line.
type WebhookOrderLineResponse struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	GSTSlab  decimal.Decimal `json:"gstSlab"`
}

// WebhookOrderResponse staged order awaiting confirmation.
type WebhookOrderResponse struct {
	ID            string                     `json:"id"`
	Kind          string                     `json:"kind"`
	CustomerID    string                     `json:"customerId,omitempty"`
	BuyerName     string                     `json:"buyerName"`
	BuyerEmail    string                     `json:"buyerEmail,omitempty"`
	Lines         []WebhookOrderLineResponse `json:"lines"`
	TaxableAmount decimal.Decimal            `json:"taxableAmount"`
	GSTAmount     decimal.Decimal            `json:"gstAmount"`
	Total         decimal.Decimal            `json:"total"`
	CreatedAt     string                     `json:"createdAt"`
}
