package service

import (
	"context"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/pricing"
)

type VoucherService interface {
	// ListActive returns the selectable voucher set: inside the date window
	// with remaining uses.
	ListActive(ctx context.Context) ([]models.Voucher, error)
	// Preview projects a voucher onto a subtotal without applying it.
	Preview(ctx context.Context, voucherID int64, subtotal int64) (*models.VoucherPreview, error)
}

type voucherService struct {
	vouchers gateway.VoucherGateway
}

func NewVoucherService(vouchers gateway.VoucherGateway) VoucherService {
	return &voucherService{vouchers: vouchers}
}

func (s *voucherService) ListActive(ctx context.Context) ([]models.Voucher, error) {

	vouchers, err := s.vouchers.ListActiveVouchers(ctx)
	if err != nil {
		return nil, err
	}

	return pricing.ActiveVouchers(vouchers, time.Now()), nil
}

func (s *voucherService) Preview(ctx context.Context, voucherID int64, subtotal int64) (*models.VoucherPreview, error) {

	active, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range active {
		if v.VoucherID == voucherID {

			preview := &models.VoucherPreview{Voucher: v}

			if pricing.Eligible(&v, subtotal) {
				preview.Eligible = true
				preview.Discount = pricing.Discount(subtotal, &v)
			}

			return preview, nil
		}
	}

	return nil, errors.NotFoundError("Voucher is not available")
}
