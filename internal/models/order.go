package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type OrderDetail struct {
	ProductVariantID int64 `json:"productVariantId" validate:"required"`
	Quantity         int   `json:"quantity" validate:"required,min=1"`
}

// OrderSubmission is the order-creation payload. It is constructed once at
// submit time and never mutated afterwards; building it twice from the same
// selections yields structurally equal values.
type OrderSubmission struct {
	ReceiverAddressID int64         `json:"receiverAddressId" validate:"required"`
	PaymentMethodID   int64         `json:"paymentMethodId" validate:"required"`
	DeliveryMethodID  int64         `json:"deliveryMethodId" validate:"required"`
	VoucherID         *int64        `json:"voucherId,omitempty"`
	OrderDetails      []OrderDetail `json:"orderDetails" validate:"required,min=1,dive"`
}

// CreatedOrder is the backend's order-creation response. PaymentURL is set
// only when the chosen payment method requires a gateway redirect.
type CreatedOrder struct {
	OrderID    int64  `json:"orderId"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

type Order struct {
	OrderID     int64         `json:"orderId"`
	Status      OrderStatus   `json:"status"`
	TotalAmount int64         `json:"totalAmount"`
	Details     []OrderDetail `json:"orderDetails"`
	CreatedAt   time.Time     `json:"createdAt"`
}
