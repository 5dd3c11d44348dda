// Package mocks provides testify mocks for the backend gateway interfaces.
package mocks

import (
	"context"

	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/stretchr/testify/mock"
)

type AddressGateway struct {
	mock.Mock
}

func (m *AddressGateway) ListAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *AddressGateway) DefaultAddress(ctx context.Context) (*models.Address, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Address), args.Error(1)
}

type PaymentMethodGateway struct {
	mock.Mock
}

func (m *PaymentMethodGateway) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

type DeliveryMethodGateway struct {
	mock.Mock
}

func (m *DeliveryMethodGateway) ListDeliveryMethods(ctx context.Context) ([]models.ShippingMethod, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.ShippingMethod), args.Error(1)
}

type VoucherGateway struct {
	mock.Mock
}

func (m *VoucherGateway) ListActiveVouchers(ctx context.Context) ([]models.Voucher, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Voucher), args.Error(1)
}

type OrderGateway struct {
	mock.Mock
}

func (m *OrderGateway) CreateOrder(ctx context.Context, submission *models.OrderSubmission) (*models.CreatedOrder, error) {
	args := m.Called(ctx, submission)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CreatedOrder), args.Error(1)
}

func (m *OrderGateway) OrderHistory(ctx context.Context, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, page, size)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderGateway) Order(ctx context.Context, orderID int64) (*models.Order, error) {
	args := m.Called(ctx, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderGateway) CancelOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)

	return args.Error(0)
}

type CartGateway struct {
	mock.Mock
}

func (m *CartGateway) GetCart(ctx context.Context) (*models.Cart, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartGateway) AddItem(ctx context.Context, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartGateway) UpdateItem(ctx context.Context, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartGateway) RemoveItems(ctx context.Context, productVariantIDs []int64) error {
	args := m.Called(ctx, productVariantIDs)

	return args.Error(0)
}
