package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KimTien0410/shop-checkout/internal/api/middleware"
	"github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/models"
	service "github.com/KimTien0410/shop-checkout/internal/services"
	"github.com/KimTien0410/shop-checkout/internal/utils"
	"github.com/KimTien0410/shop-checkout/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders godoc
//	@Summary		List the user's orders with pagination
//	@Description	Returns a page of the authenticated user's order history, newest first. Requires authentication.
//	@Tags			Orders
//	@Produce		json
//	@Param			page	query		int												false	"Page number (default: 1)"							minimum(1)
//	@Param			size	query		int												false	"Number of orders per page (default: 10, max: 50)"	minimum(1)	maximum(50)
//	@Success		200		{object}	models.PaginatedResponse{Data=[]models.Order}	"Page of orders"
//	@Failure		401		{object}	response.ErrorResponse							"Authentication required"
//	@Failure		502		{object}	response.ErrorResponse							"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		size, err := strconv.Atoi(r.URL.Query().Get("size"))
		if err != nil || size < 1 || size > 50 {
			size = 10
		}

		orders, total, err := h.orderService.History(r.Context(), page, size)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed", slog.Int("count", len(orders)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Description	Returns the details of one of the authenticated user's orders. Requires authentication.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	models.Order			"Order details"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.Get(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get order",
				slog.Int64("orderId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// CancelOrder godoc
//	@Summary		Cancel an order
//	@Description	Cancels a pending order of the authenticated user. Requires authentication.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	response.APIResponse	"Order cancelled"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order id or order not cancellable"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order cancel attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.orderService.Cancel(r.Context(), id); err != nil {
			logger.Error("Failed to cancel order",
				slog.Int64("orderId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order cancelled", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, map[string]int64{"orderId": id})
	}
}
