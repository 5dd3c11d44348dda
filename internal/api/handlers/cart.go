package handlers

import (
	"log/slog"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/api/middleware"
	"github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/models"
	service "github.com/KimTien0410/shop-checkout/internal/services"
	"github.com/KimTien0410/shop-checkout/internal/utils"
	"github.com/KimTien0410/shop-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the user's cart
//	@Description	Returns the authenticated user's cart lines. Requires authentication.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Current cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		cart, err := h.cartService.Get(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds a product variant to the cart, or increments its quantity when already present. Requires authentication.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Variant and quantity"
//	@Success		200		{object}	models.Cart					"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		502		{object}	response.ErrorResponse		"Backend rejected the change"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add cart item",
				slog.Int64("productVariantId", req.ProductVariantID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item added",
			slog.Int64("productVariantId", req.ProductVariantID),
			slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Change an item's quantity
//	@Description	Sets the quantity of a cart line. Requires authentication.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"Variant and new quantity"
//	@Success		200		{object}	models.Cart						"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		502		{object}	response.ErrorResponse			"Backend rejected the change"
//	@Security		BearerAuth
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update quantity",
				slog.Int64("productVariantId", req.ProductVariantID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItems godoc
//	@Summary		Remove items from the cart
//	@Description	Deletes the given product variants from the cart. Requires authentication.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			items	body		models.RemoveCartItemsRequest	true	"Variants to remove"
//	@Success		200		{object}	models.Cart						"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		502		{object}	response.ErrorResponse			"Backend rejected the change"
//	@Security		BearerAuth
//	@Router			/cart/items [delete]
func (h *CartHandler) RemoveItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.RemoveCartItemsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid remove items input")
			return
		}

		cart, err := h.cartService.RemoveItems(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to remove cart items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart items removed", slog.Int("count", len(req.ProductVariantIDs)))
		response.Success(w, http.StatusOK, cart)
	}
}

// GetCount godoc
//	@Summary		Get the cart item count
//	@Description	Returns the total quantity across cart lines, for the header badge. Requires authentication.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartCountResponse	"Item count"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/count [get]
func (h *CartHandler) GetCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart count attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		count, err := h.cartService.Count(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to count cart items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartCountResponse{Count: count})
	}
}
