// Package mocks provides a testify mock for the snapshot store.
package mocks

import (
	"context"

	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (m *Store) SaveSession(ctx context.Context, userID uuid.UUID, session *models.CheckoutSession) error {
	args := m.Called(ctx, userID, session)

	return args.Error(0)
}

func (m *Store) Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, bool, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.CheckoutSession), args.Bool(1), args.Error(2)
}

func (m *Store) ClearSession(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *Store) SaveCart(ctx context.Context, userID uuid.UUID, cart *models.Cart) error {
	args := m.Called(ctx, userID, cart)

	return args.Error(0)
}

func (m *Store) Cart(ctx context.Context, userID uuid.UUID) (*models.Cart, bool, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.Cart), args.Bool(1), args.Error(2)
}
