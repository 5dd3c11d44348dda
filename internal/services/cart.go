package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/snapshot"
	"github.com/google/uuid"
)

// CartService proxies the server-side cart and keeps a last known-good copy
// in the snapshot store. Mutations are staged into that copy first so the
// caller sees the optimistic result immediately; when the backend rejects the
// mutation the previous copy is restored instead of leaving stale optimistic
// state behind.
type CartService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItems(ctx context.Context, userID uuid.UUID, req *models.RemoveCartItemsRequest) (*models.Cart, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type cartService struct {
	carts gateway.CartGateway
	store snapshot.Store
}

func NewCartService(carts gateway.CartGateway, store snapshot.Store) CartService {
	return &cartService{carts: carts, store: store}
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.carts.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	s.saveCopy(ctx, userID, cart)

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {

	cart, err := s.carts.AddItem(ctx, req)
	if err != nil {
		return nil, err
	}

	s.saveCopy(ctx, userID, cart)

	return cart, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	previous, err := s.knownGood(ctx, userID)
	if err != nil {
		return nil, err
	}

	staged := cloneCart(previous)
	for i := range staged.Items {
		if staged.Items[i].ProductVariantID == req.ProductVariantID {
			staged.Items[i].Quantity = req.Quantity

			break
		}
	}

	s.saveCopy(ctx, userID, staged)

	cart, err := s.carts.UpdateItem(ctx, req)
	if err != nil {
		// roll the optimistic copy back to the last state the backend
		// confirmed
		s.saveCopy(ctx, userID, previous)

		return nil, err
	}

	s.saveCopy(ctx, userID, cart)

	return cart, nil
}

func (s *cartService) RemoveItems(ctx context.Context, userID uuid.UUID, req *models.RemoveCartItemsRequest) (*models.Cart, error) {

	previous, err := s.knownGood(ctx, userID)
	if err != nil {
		return nil, err
	}

	staged := cloneCart(previous)
	staged.Items = slices.DeleteFunc(staged.Items, func(item models.CartLineItem) bool {
		return slices.Contains(req.ProductVariantIDs, item.ProductVariantID)
	})

	s.saveCopy(ctx, userID, staged)

	if err := s.carts.RemoveItems(ctx, req.ProductVariantIDs); err != nil {
		s.saveCopy(ctx, userID, previous)

		return nil, err
	}

	return staged, nil
}

func (s *cartService) Count(ctx context.Context, userID uuid.UUID) (int, error) {

	cart, found, err := s.store.Cart(ctx, userID)
	if err == nil && found {
		return cart.ItemCount(), nil
	}

	cart, err = s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}

	return cart.ItemCount(), nil
}

// knownGood returns the cached cart copy, falling back to a fresh fetch when
// the copy is missing or unreadable.
func (s *cartService) knownGood(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, found, err := s.store.Cart(ctx, userID)
	if err == nil && found {
		return cart, nil
	}

	return s.Get(ctx, userID)
}

func (s *cartService) saveCopy(ctx context.Context, userID uuid.UUID, cart *models.Cart) {
	if err := s.store.SaveCart(ctx, userID, cart); err != nil {
		slog.Warn("Failed to save cart copy", slog.String("error", err.Error()))
	}
}

func cloneCart(cart *models.Cart) *models.Cart {
	return &models.Cart{Items: slices.Clone(cart.Items)}
}
