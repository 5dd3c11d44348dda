// Package snapshot keeps the per-user transient checkout state in Redis: the
// checkout session (with its line-item snapshot) and the last known-good copy
// of the cart used to roll back failed optimistic mutations.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/cache"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/google/uuid"
)

type Store interface {
	SaveSession(ctx context.Context, userID uuid.UUID, session *models.CheckoutSession) error
	Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, bool, error)
	ClearSession(ctx context.Context, userID uuid.UUID) error
	SaveCart(ctx context.Context, userID uuid.UUID, cart *models.Cart) error
	Cart(ctx context.Context, userID uuid.UUID) (*models.Cart, bool, error)
}

type store struct {
	cache       cache.Cache
	checkoutTTL time.Duration
	cartTTL     time.Duration
}

func NewStore(c cache.Cache, checkoutTTL, cartTTL time.Duration) Store {
	return &store{
		cache:       c,
		checkoutTTL: checkoutTTL,
		cartTTL:     cartTTL,
	}
}

func (s *store) SaveSession(ctx context.Context, userID uuid.UUID, session *models.CheckoutSession) error {
	key := cache.Key(cache.CheckoutKeyPrefix, userID.String())

	if err := s.cache.Set(ctx, key, session, s.checkoutTTL); err != nil {
		return fmt.Errorf("failed to save checkout session: %w", err)
	}

	return nil
}

func (s *store) Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, bool, error) {
	key := cache.Key(cache.CheckoutKeyPrefix, userID.String())

	session := &models.CheckoutSession{}

	found, err := s.cache.Get(ctx, key, session)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load checkout session: %w", err)
	}

	if !found {
		return nil, false, nil
	}

	return session, true, nil
}

func (s *store) ClearSession(ctx context.Context, userID uuid.UUID) error {
	key := cache.Key(cache.CheckoutKeyPrefix, userID.String())

	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear checkout session: %w", err)
	}

	return nil
}

func (s *store) SaveCart(ctx context.Context, userID uuid.UUID, cart *models.Cart) error {
	key := cache.Key(cache.CartKeyPrefix, userID.String())

	if err := s.cache.Set(ctx, key, cart, s.cartTTL); err != nil {
		return fmt.Errorf("failed to save cart copy: %w", err)
	}

	return nil
}

func (s *store) Cart(ctx context.Context, userID uuid.UUID) (*models.Cart, bool, error) {
	key := cache.Key(cache.CartKeyPrefix, userID.String())

	cart := &models.Cart{}

	found, err := s.cache.Get(ctx, key, cart)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load cart copy: %w", err)
	}

	if !found {
		return nil, false, nil
	}

	return cart, true, nil
}
