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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// StartCheckout godoc
//	@Summary		Start a checkout session
//	@Description	Captures the submitted cart lines as an immutable snapshot, fetches addresses, payment and delivery methods, and returns the initial session with a price quote. Requires authentication.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.StartCheckoutRequest	true	"Cart lines selected for checkout"
//	@Success		201			{object}	models.CheckoutSession		"Checkout session ready"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error or empty item list"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		502			{object}	response.ErrorResponse		"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) StartCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout start attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.StartCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid start checkout input")
			return
		}

		session, err := h.checkoutService.Start(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to start checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout session started", slog.Int("itemCount", len(session.Snapshot.Items)))
		response.Success(w, http.StatusCreated, session)
	}
}

// GetSession godoc
//	@Summary		Get the current checkout session
//	@Description	Returns the authenticated user's active checkout session with a freshly computed quote. Requires authentication.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutSession	"Current session"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"No active checkout session"
//	@Security		BearerAuth
//	@Router			/checkout [get]
func (h *CheckoutHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		session, err := h.checkoutService.Session(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load checkout session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// UpdateSelection godoc
//	@Summary		Update checkout selections
//	@Description	Changes the selected address, payment method or delivery method. Omitted fields keep their current value. The quote is recomputed and returned with the session. Requires authentication.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			selection	body		models.SelectionRequest	true	"Fields to update"
//	@Success		200			{object}	models.CheckoutSession	"Updated session"
//	@Failure		400			{object}	response.ErrorResponse	"Unknown address or method id"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"No active checkout session"
//	@Security		BearerAuth
//	@Router			/checkout/selection [patch]
func (h *CheckoutHandler) UpdateSelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized selection update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.SelectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid selection input")
			return
		}

		session, err := h.checkoutService.Select(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update selection", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout selection updated")
		response.Success(w, http.StatusOK, session)
	}
}

// ApplyVoucher godoc
//	@Summary		Apply a voucher to the session
//	@Description	Applies the given voucher if it is active and the snapshot subtotal sits inside its order-value bounds, then returns the session with the discounted quote. Requires authentication.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			voucher	body		models.ApplyVoucherRequest	true	"Voucher to apply"
//	@Success		200		{object}	models.CheckoutSession		"Session with voucher applied"
//	@Failure		400		{object}	response.ErrorResponse		"Voucher not eligible for this subtotal"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Voucher or session not found"
//	@Security		BearerAuth
//	@Router			/checkout/voucher [post]
func (h *CheckoutHandler) ApplyVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized voucher apply attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.ApplyVoucherRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid apply voucher input")
			return
		}

		logger = logger.With(slog.Int64("voucherId", req.VoucherID))

		session, err := h.checkoutService.ApplyVoucher(r.Context(), claims.UserID, req.VoucherID)
		if err != nil {
			logger.Error("Failed to apply voucher", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Voucher applied", slog.Int64("discount", session.Quote.Discount))
		response.Success(w, http.StatusOK, session)
	}
}

// RemoveVoucher godoc
//	@Summary		Remove the applied voucher
//	@Description	Clears the session's voucher and returns the session with an undiscounted quote. Requires authentication.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutSession	"Session without voucher"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"No active checkout session"
//	@Security		BearerAuth
//	@Router			/checkout/voucher [delete]
func (h *CheckoutHandler) RemoveVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized voucher removal attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		session, err := h.checkoutService.RemoveVoucher(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to remove voucher", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Voucher removed")
		response.Success(w, http.StatusOK, session)
	}
}

// PlaceOrder godoc
//	@Summary		Place the order
//	@Description	Submits the checkout session as an order. Responds with either a payment gateway redirect URL or the order-history route, depending on the chosen payment method. Requires authentication.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.PlaceOrderResult	"Order placed"
//	@Failure		400	{object}	response.ErrorResponse	"Incomplete selections or stale voucher"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		409	{object}	response.ErrorResponse	"Submission already in progress"
//	@Failure		502	{object}	response.ErrorResponse	"Order rejected by the backend"
//	@Security		BearerAuth
//	@Router			/checkout/place-order [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized place order attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		result, err := h.checkoutService.PlaceOrder(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed",
			slog.Int64("orderId", result.OrderID),
			slog.String("state", result.State.String()))
		response.Success(w, http.StatusOK, result)
	}
}
