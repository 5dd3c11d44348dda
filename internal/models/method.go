package models

// PaymentMethod is read-only reference data fetched per checkout session.
// RequiresRedirect marks the online gateway method; the backend supplies the
// flag so the client never compares hard-coded method ids.
type PaymentMethod struct {
	PaymentMethodID  int64  `json:"paymentMethodId"`
	Name             string `json:"name"`
	Logo             string `json:"logo"`
	Description      string `json:"description"`
	RequiresRedirect bool   `json:"requiresRedirect"`
}

// ShippingMethod carries its fee as a decimal string, exactly as the backend
// serialises it. Parsing happens in the pricing package.
type ShippingMethod struct {
	DeliveryMethodID int64  `json:"deliveryMethodId"`
	Name             string `json:"name"`
	DeliveryFee      string `json:"deliveryFee"`
	Logo             string `json:"logo"`
	Description      string `json:"description"`
}
