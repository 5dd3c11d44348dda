// Package mocks provides testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Start(ctx context.Context, userID uuid.UUID, req *models.StartCheckoutRequest) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *CheckoutService) Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *CheckoutService) Select(ctx context.Context, userID uuid.UUID, req *models.SelectionRequest) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *CheckoutService) ApplyVoucher(ctx context.Context, userID uuid.UUID, voucherID int64) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userID, voucherID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *CheckoutService) RemoveVoucher(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*models.PlaceOrderResult, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PlaceOrderResult), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) Get(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) RemoveItems(ctx context.Context, userID uuid.UUID, req *models.RemoveCartItemsRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)

	return args.Int(0), args.Error(1)
}

type VoucherService struct {
	mock.Mock
}

func (m *VoucherService) ListActive(ctx context.Context) ([]models.Voucher, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Voucher), args.Error(1)
}

func (m *VoucherService) Preview(ctx context.Context, voucherID int64, subtotal int64) (*models.VoucherPreview, error) {
	args := m.Called(ctx, voucherID, subtotal)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.VoucherPreview), args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) History(ctx context.Context, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, page, size)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderService) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	args := m.Called(ctx, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) Cancel(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)

	return args.Error(0)
}
