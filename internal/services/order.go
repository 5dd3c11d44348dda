package service

import (
	"context"

	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/models"
)

type OrderService interface {
	History(ctx context.Context, page, size int) ([]models.Order, int, error)
	Get(ctx context.Context, orderID int64) (*models.Order, error)
	Cancel(ctx context.Context, orderID int64) error
}

type orderService struct {
	orders gateway.OrderGateway
}

func NewOrderService(orders gateway.OrderGateway) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) History(ctx context.Context, page, size int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	return s.orders.OrderHistory(ctx, page, size)
}

func (s *orderService) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	return s.orders.Order(ctx, orderID)
}

func (s *orderService) Cancel(ctx context.Context, orderID int64) error {
	return s.orders.CancelOrder(ctx, orderID)
}
