package gateway

import (
	"context"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

type CartGateway interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	AddItem(ctx context.Context, req *models.AddCartItemRequest) (*models.Cart, error)
	UpdateItem(ctx context.Context, req *models.UpdateQuantityRequest) (*models.Cart, error)
	// RemoveItems deletes the given variants from the server-side cart. The
	// backend treats already-removed variants as removed, so the call is safe
	// to retry.
	RemoveItems(ctx context.Context, productVariantIDs []int64) error
}

type cartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) GetCart(ctx context.Context) (*models.Cart, error) {

	cart := &models.Cart{}

	if err := g.client.do(ctx, http.MethodGet, "/carts", nil, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (g *cartGateway) AddItem(ctx context.Context, req *models.AddCartItemRequest) (*models.Cart, error) {

	cart := &models.Cart{}

	if err := g.client.do(ctx, http.MethodPost, "/carts", req, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (g *cartGateway) UpdateItem(ctx context.Context, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	cart := &models.Cart{}

	if err := g.client.do(ctx, http.MethodPut, "/carts", req, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (g *cartGateway) RemoveItems(ctx context.Context, productVariantIDs []int64) error {

	req := &models.RemoveCartItemsRequest{ProductVariantIDs: productVariantIDs}

	return g.client.do(ctx, http.MethodDelete, "/carts", req, nil)
}
