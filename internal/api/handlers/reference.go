package handlers

import (
	"log/slog"
	"net/http"

	"github.com/KimTien0410/shop-checkout/internal/api/middleware"
	"github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/utils/response"
)

// ReferenceHandler exposes the read-only reference data the checkout screen
// needs outside a session: receiver addresses, payment methods and delivery
// methods. They proxy straight through to the backend.
type ReferenceHandler struct {
	addresses gateway.AddressGateway
	payments  gateway.PaymentMethodGateway
	delivery  gateway.DeliveryMethodGateway
}

func NewReferenceHandler(addresses gateway.AddressGateway, payments gateway.PaymentMethodGateway, delivery gateway.DeliveryMethodGateway) *ReferenceHandler {
	return &ReferenceHandler{addresses: addresses, payments: payments, delivery: delivery}
}

// ListAddresses godoc
//	@Summary		List receiver addresses
//	@Description	Returns the authenticated user's receiver addresses. Requires authentication.
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{array}		models.Address			"Receiver addresses"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/addresses [get]
func (h *ReferenceHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized address list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.addresses.ListAddresses(r.Context())
		if err != nil {
			logger.Error("Failed to list addresses", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// GetDefaultAddress godoc
//	@Summary		Get the default receiver address
//	@Description	Returns the authenticated user's default receiver address. Requires authentication.
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{object}	models.Address			"Default address"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"No default address set"
//	@Security		BearerAuth
//	@Router			/addresses/default [get]
func (h *ReferenceHandler) GetDefaultAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		address, err := h.addresses.DefaultAddress(r.Context())
		if err != nil {
			logger.Error("Failed to get default address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// ListPaymentMethods godoc
//	@Summary		List payment methods
//	@Description	Returns the available payment methods, including whether each one redirects to an external gateway. Requires authentication.
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{array}		models.PaymentMethod	"Payment methods"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/payment-methods [get]
func (h *ReferenceHandler) ListPaymentMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized payment method list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		methods, err := h.payments.ListPaymentMethods(r.Context())
		if err != nil {
			logger.Error("Failed to list payment methods", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, methods)
	}
}

// ListDeliveryMethods godoc
//	@Summary		List delivery methods
//	@Description	Returns the available delivery methods with their fees. Requires authentication.
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{array}		models.ShippingMethod	"Delivery methods"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/delivery-methods [get]
func (h *ReferenceHandler) ListDeliveryMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized delivery method list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		methods, err := h.delivery.ListDeliveryMethods(r.Context())
		if err != nil {
			logger.Error("Failed to list delivery methods", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, methods)
	}
}
