package models

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

type Voucher struct {
	VoucherID     int64        `json:"voucherId"`
	VoucherCode   string       `json:"voucherCode"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	MinOrderValue int64        `json:"minOrderValue"`
	MaxOrderValue *int64       `json:"maxOrderValue,omitempty"`
	StartDate     time.Time    `json:"startDate"`
	EndDate       time.Time    `json:"endDate"`
	// Quantity is the remaining number of uses; nil means unlimited.
	Quantity *int `json:"quantity,omitempty"`
}

type ApplyVoucherRequest struct {
	VoucherID int64 `json:"voucherId" validate:"required"`
}

// VoucherPreview is the projected effect of a voucher on a given subtotal.
type VoucherPreview struct {
	Voucher  Voucher `json:"voucher"`
	Eligible bool    `json:"eligible"`
	Discount int64   `json:"discount"`
}
