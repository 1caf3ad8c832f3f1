package entity

import "time"

// Customer types.
const (
	CustomerTypeIndividual = "individual"
	CustomerTypeBusiness   = "business"
)

// Customer is a buyer. Email is unique and used for idempotent creation from
// webhook intake. PlaceOfSupply is the customer's state and decides the
// CGST/SGST vs IGST split against the seller's home state.
type Customer struct {
	ID              string
	Type            string
	Name            string
	Email           string
	Phone           string
	GSTNumber       string
	PlaceOfSupply   string
	BillingAddress  string
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
