package gateway

import (
	"context"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/models"
)

type PaymentMethodGateway interface {
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type DeliveryMethodGateway interface {
	ListDeliveryMethods(ctx context.Context) ([]models.ShippingMethod, error)
}

type paymentMethodGateway struct {
	client *Client
}

func NewPaymentMethodGateway(client *Client) PaymentMethodGateway {
	return &paymentMethodGateway{client: client}
}

func (g *paymentMethodGateway) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {

	var methods []models.PaymentMethod

	if err := g.client.do(ctx, http.MethodGet, "/payment-methods", nil, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}

type deliveryMethodGateway struct {
	client *Client
}

func NewDeliveryMethodGateway(client *Client) DeliveryMethodGateway {
	return &deliveryMethodGateway{client: client}
}

func (g *deliveryMethodGateway) ListDeliveryMethods(ctx context.Context) ([]models.ShippingMethod, error) {

	var methods []models.ShippingMethod

	if err := g.client.do(ctx, http.MethodGet, "/delivery-methods", nil, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}
