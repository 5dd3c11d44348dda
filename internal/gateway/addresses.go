package gateway

import (
	"context"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

type AddressGateway interface {
	ListAddresses(ctx context.Context) ([]models.Address, error)
	DefaultAddress(ctx context.Context) (*models.Address, error)
}

type addressGateway struct {
	client *Client
}

func NewAddressGateway(client *Client) AddressGateway {
	return &addressGateway{client: client}
}

func (g *addressGateway) ListAddresses(ctx context.Context) ([]models.Address, error) {

	var addresses []models.Address

	if err := g.client.do(ctx, http.MethodGet, "/receiver-addresses", nil, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (g *addressGateway) DefaultAddress(ctx context.Context) (*models.Address, error) {

	address := &models.Address{}

	if err := g.client.do(ctx, http.MethodGet, "/receiver-addresses/default", nil, address); err != nil {
		return nil, err
	}

	return address, nil
}
