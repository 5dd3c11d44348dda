// Package pricing holds the order price computation: subtotal, voucher
// discount, shipping fee and payable total. Everything here is a pure
// function over already-fetched data; all amounts are int64 minor currency
// units so no floating-point arithmetic touches money.
package pricing

import (
	"math"
	"strconv"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

// Subtotal sums unit price times quantity over the checkout lines.
func Subtotal(items []models.CartLineItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	return subtotal
}

// Eligible reports whether the voucher may be applied to an order of the
// given subtotal: the subtotal must reach MinOrderValue and, when
// MaxOrderValue is set, must not exceed it.
func Eligible(v *models.Voucher, subtotal int64) bool {
	if v == nil {
		return false
	}

	if subtotal < v.MinOrderValue {
		return false
	}

	if v.MaxOrderValue != nil && subtotal > *v.MaxOrderValue {
		return false
	}

	return true
}

// Active reports whether the voucher is usable at all right now:
// startDate <= now <= endDate and remaining quantity (nil means unlimited).
func Active(v *models.Voucher, now time.Time) bool {
	if v.StartDate.After(now) || v.EndDate.Before(now) {
		return false
	}

	if v.Quantity != nil && *v.Quantity <= 0 {
		return false
	}

	return true
}

// ActiveVouchers filters the backend voucher list down to the selectable set.
func ActiveVouchers(vouchers []models.Voucher, now time.Time) []models.Voucher {
	active := make([]models.Voucher, 0, len(vouchers))

	for _, v := range vouchers {
		if Active(&v, now) {
			active = append(active, v)
		}
	}

	return active
}

// Discount maps (subtotal, voucher) to a discount amount. A percentage
// voucher floors to whole currency units via integer division; a fixed
// voucher is capped at the subtotal so the discount can never push the
// total negative.
func Discount(subtotal int64, v *models.Voucher) int64 {
	if v == nil {
		return 0
	}

	if v.DiscountType == models.DiscountTypePercentage {
		return subtotal * v.DiscountValue / 100
	}

	return min(v.DiscountValue, subtotal)
}

// ShippingFee resolves the fee of the selected method from the resident
// method list. Returns 0 when nothing is selected or the id is unknown.
// The backend serialises the fee as a decimal string.
func ShippingFee(methodID int64, methods []models.ShippingMethod) int64 {
	if methodID == 0 {
		return 0
	}

	for _, m := range methods {
		if m.DeliveryMethodID == methodID {
			fee, err := strconv.ParseFloat(m.DeliveryFee, 64)
			if err != nil {
				return 0
			}

			return int64(math.Round(fee))
		}
	}

	return 0
}

// Total is the payable amount, clamped at zero regardless of the
// discount/shipping combination.
func Total(subtotal, discount, shippingFee int64) int64 {
	return max(0, subtotal-discount+shippingFee)
}

// Quote computes the full displayed breakdown for a checkout session.
func Quote(items []models.CartLineItem, voucher *models.Voucher, shippingMethodID int64, methods []models.ShippingMethod) models.Quote {
	subtotal := Subtotal(items)
	discount := Discount(subtotal, voucher)
	fee := ShippingFee(shippingMethodID, methods)

	return models.Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: fee,
		Total:       Total(subtotal, discount, fee),
	}
}
