package dto

// CreateCustomerRequest new customer payload.
type CreateCustomerRequest struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	GSTNumber       string `json:"gstNumber"`
	PlaceOfSupply   string `json:"placeOfSupply"`
	BillingAddress  string `json:"billingAddress"`
	ShippingAddress string `json:"shippingAddress"`
}

// CustomerResponse customer representation.
type CustomerResponse struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	GSTNumber       string `json:"gstNumber"`
	PlaceOfSupply   string `json:"placeOfSupply"`
	BillingAddress  string `json:"billingAddress"`
	ShippingAddress string `json:"shippingAddress"`
}
