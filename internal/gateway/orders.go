package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

type OrderGateway interface {
	CreateOrder(ctx context.Context, submission *models.OrderSubmission) (*models.CreatedOrder, error)
	OrderHistory(ctx context.Context, page, size int) ([]models.Order, int, error)
	Order(ctx context.Context, orderID int64) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
}

type orderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) OrderGateway {
	return &orderGateway{client: client}
}

func (g *orderGateway) CreateOrder(ctx context.Context, submission *models.OrderSubmission) (*models.CreatedOrder, error) {

	order := &models.CreatedOrder{}

	if err := g.client.do(ctx, http.MethodPost, "/orders", submission, order); err != nil {
		return nil, err
	}

	return order, nil
}

// orderPage mirrors the backend's paginated order listing.
type orderPage struct {
	Content       []models.Order `json:"content"`
	TotalElements int            `json:"totalElements"`
}

func (g *orderGateway) OrderHistory(ctx context.Context, page, size int) ([]models.Order, int, error) {

	var result orderPage

	path := fmt.Sprintf("/orders?page=%d&size=%d", page, size)

	if err := g.client.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, 0, err
	}

	return result.Content, result.TotalElements, nil
}

func (g *orderGateway) Order(ctx context.Context, orderID int64) (*models.Order, error) {

	order := &models.Order{}

	path := fmt.Sprintf("/orders/%d", orderID)

	if err := g.client.do(ctx, http.MethodGet, path, nil, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (g *orderGateway) CancelOrder(ctx context.Context, orderID int64) error {

	path := fmt.Sprintf("/orders/cancel/%d", orderID)

	return g.client.do(ctx, http.MethodPatch, path, nil, nil)
}
