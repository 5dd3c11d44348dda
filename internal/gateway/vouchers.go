package gateway

import (
	"context"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

type VoucherGateway interface {
	ListActiveVouchers(ctx context.Context) ([]models.Voucher, error)
}

type voucherGateway struct {
	client *Client
}

func NewVoucherGateway(client *Client) VoucherGateway {
	return &voucherGateway{client: client}
}

func (g *voucherGateway) ListActiveVouchers(ctx context.Context) ([]models.Voucher, error) {

	var vouchers []models.Voucher

	if err := g.client.do(ctx, http.MethodGet, "/vouchers", nil, &vouchers); err != nil {
		return nil, err
	}

	return vouchers, nil
}
