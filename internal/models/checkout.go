package models

import "time"

type CheckoutState string

const (
	CheckoutStateLoading    CheckoutState = "LOADING"
	CheckoutStateReady      CheckoutState = "READY"
	CheckoutStateSubmitting CheckoutState = "SUBMITTING"
	CheckoutStateRedirected CheckoutState = "REDIRECTED_TO_GATEWAY"
	CheckoutStateCompleted  CheckoutState = "COMPLETED"
	CheckoutStateFailed     CheckoutState = "FAILED"
)

func (s CheckoutState) String() string {
	return string(s)
}

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateRedirected || s == CheckoutStateCompleted
}

// CheckoutSnapshot is the set of cart lines copied out of the cart when the
// user proceeds to checkout. It is a value copy: later cart mutations never
// reach it. Created on the cart handoff, cleared after a successful order.
type CheckoutSnapshot struct {
	Items      []CartLineItem `json:"items"`
	CapturedAt time.Time      `json:"capturedAt"`
}

// CheckoutSession is the per-user checkout screen state: the snapshot, the
// fetched reference data and the current selections.
type CheckoutSession struct {
	State            CheckoutState    `json:"state"`
	Snapshot         CheckoutSnapshot `json:"snapshot"`
	Addresses        []Address        `json:"addresses"`
	PaymentMethods   []PaymentMethod  `json:"paymentMethods"`
	ShippingMethods  []ShippingMethod `json:"shippingMethods"`
	SelectedAddress  *int64           `json:"selectedAddressId,omitempty"`
	SelectedPayment  *int64           `json:"selectedPaymentMethodId,omitempty"`
	SelectedShipping *int64           `json:"selectedDeliveryMethodId,omitempty"`
	AppliedVoucher   *Voucher         `json:"appliedVoucher,omitempty"`
	Quote            Quote            `json:"quote"`
}

// CanSubmit reports whether the place-order action is enabled: an address, a
// payment method and a shipping method must all be selected. The voucher is
// optional.
func (s *CheckoutSession) CanSubmit() bool {
	return s.State == CheckoutStateReady &&
		s.SelectedAddress != nil &&
		s.SelectedPayment != nil &&
		s.SelectedShipping != nil &&
		len(s.Snapshot.Items) > 0
}

// Quote is the displayed price breakdown, recomputed from the session on
// every read.
type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	ShippingFee int64 `json:"shippingFee"`
	Total       int64 `json:"total"`
}

type StartCheckoutRequest struct {
	Items []CartLineItem `json:"items" validate:"required,min=1,dive"`
}

// SelectionRequest updates one or more of the session's selections. Omitted
// fields keep their current value.
type SelectionRequest struct {
	AddressID        *int64 `json:"addressId,omitempty"`
	PaymentMethodID  *int64 `json:"paymentMethodId,omitempty"`
	DeliveryMethodID *int64 `json:"deliveryMethodId,omitempty"`
}

// PlaceOrderResult tells the caller where to go next. RedirectURL points at
// the payment gateway when the chosen method requires it, otherwise at the
// order-history view.
type PlaceOrderResult struct {
	State       CheckoutState `json:"state"`
	OrderID     int64         `json:"orderId,omitempty"`
	RedirectURL string        `json:"redirectUrl"`
}
