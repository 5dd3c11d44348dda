package pricing_test

import (
	"testing"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func TestSubtotal(t *testing.T) {
	items := []models.CartLineItem{
		{ProductVariantID: 1, UnitPrice: 100000, Quantity: 2},
		{ProductVariantID: 2, UnitPrice: 55000, Quantity: 1},
	}

	assert.Equal(t, int64(255000), pricing.Subtotal(items))
	assert.Equal(t, int64(0), pricing.Subtotal(nil))
}

func TestDiscount_FixedNeverExceedsSubtotal(t *testing.T) {
	voucher := &models.Voucher{DiscountType: models.DiscountTypeFixed, DiscountValue: 150000}

	assert.Equal(t, int64(100000), pricing.Discount(100000, voucher))
	assert.Equal(t, int64(150000), pricing.Discount(200000, voucher))
	assert.Equal(t, int64(0), pricing.Discount(0, voucher))
}

func TestDiscount_PercentageFloorsToIntegerUnits(t *testing.T) {
	voucher := &models.Voucher{DiscountType: models.DiscountTypePercentage, DiscountValue: 10}

	// floor(99.9) = 99
	assert.Equal(t, int64(99), pricing.Discount(999, voucher))
	assert.Equal(t, int64(20000), pricing.Discount(200000, voucher))
}

func TestDiscount_NoVoucher(t *testing.T) {
	assert.Equal(t, int64(0), pricing.Discount(100000, nil))
}

func TestTotal_NeverNegative(t *testing.T) {
	// over-applied discount must clamp at zero, not go to -30000
	assert.Equal(t, int64(0), pricing.Total(50000, 80000, 0))
	assert.Equal(t, int64(220000), pricing.Total(200000, 0, 20000))
	assert.Equal(t, int64(0), pricing.Total(0, 0, 0))
}

func TestEligible_RespectsOrderValueBounds(t *testing.T) {
	voucher := &models.Voucher{
		MinOrderValue: 200000,
		MaxOrderValue: int64Ptr(500000),
	}

	assert.False(t, pricing.Eligible(voucher, 150000))
	assert.True(t, pricing.Eligible(voucher, 300000))
	assert.False(t, pricing.Eligible(voucher, 600000))

	// boundary values are inclusive
	assert.True(t, pricing.Eligible(voucher, 200000))
	assert.True(t, pricing.Eligible(voucher, 500000))
}

func TestEligible_NoUpperBound(t *testing.T) {
	voucher := &models.Voucher{MinOrderValue: 100000}

	assert.True(t, pricing.Eligible(voucher, 10000000))
	assert.False(t, pricing.Eligible(nil, 10000000))
}

func TestActiveVouchers_TemporalValidity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	current := models.Voucher{
		VoucherID: 1,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
	}
	notStarted := models.Voucher{
		VoucherID: 2,
		StartDate: now.AddDate(0, 0, 1),
		EndDate:   now.AddDate(0, 0, 10),
	}
	expired := models.Voucher{
		VoucherID: 3,
		StartDate: now.AddDate(0, 0, -10),
		EndDate:   now.AddDate(0, 0, -1),
	}
	exhausted := models.Voucher{
		VoucherID: 4,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
		Quantity:  intPtr(0),
	}
	limited := models.Voucher{
		VoucherID: 5,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
		Quantity:  intPtr(3),
	}

	active := pricing.ActiveVouchers([]models.Voucher{current, notStarted, expired, exhausted, limited}, now)

	assert.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].VoucherID)
	assert.Equal(t, int64(5), active[1].VoucherID)
}

func TestShippingFee(t *testing.T) {
	methods := []models.ShippingMethod{
		{DeliveryMethodID: 1, Name: "Standard", DeliveryFee: "20000"},
		{DeliveryMethodID: 2, Name: "Express", DeliveryFee: "45000.00"},
		{DeliveryMethodID: 3, Name: "Broken", DeliveryFee: "n/a"},
	}

	assert.Equal(t, int64(20000), pricing.ShippingFee(1, methods))
	assert.Equal(t, int64(45000), pricing.ShippingFee(2, methods))

	// unparsable fee, unknown id and no selection all resolve to zero
	assert.Equal(t, int64(0), pricing.ShippingFee(3, methods))
	assert.Equal(t, int64(0), pricing.ShippingFee(99, methods))
	assert.Equal(t, int64(0), pricing.ShippingFee(0, methods))
}

func TestQuote_EndToEndScenario(t *testing.T) {
	items := []models.CartLineItem{{ProductVariantID: 7, UnitPrice: 100000, Quantity: 2}}
	methods := []models.ShippingMethod{{DeliveryMethodID: 1, DeliveryFee: "20000"}}

	// no voucher
	quote := pricing.Quote(items, nil, 1, methods)
	assert.Equal(t, int64(200000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, int64(220000), quote.Total)

	// applying a 10% voucher
	voucher := &models.Voucher{DiscountType: models.DiscountTypePercentage, DiscountValue: 10}
	quote = pricing.Quote(items, voucher, 1, methods)
	assert.Equal(t, int64(20000), quote.Discount)
	assert.Equal(t, int64(200000), quote.Total)

	// removing the voucher restores the original total
	quote = pricing.Quote(items, nil, 1, methods)
	assert.Equal(t, int64(220000), quote.Total)
}
