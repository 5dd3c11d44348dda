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

type VoucherHandler struct {
	voucherService service.VoucherService
}

func NewVoucherHandler(voucherService service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// ListVouchers godoc
//	@Summary		List active vouchers
//	@Description	Returns vouchers that are inside their date window and still have uses left. Requires authentication.
//	@Tags			Vouchers
//	@Produce		json
//	@Success		200	{array}		models.Voucher			"Active vouchers"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/vouchers [get]
func (h *VoucherHandler) ListVouchers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized voucher list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		vouchers, err := h.voucherService.ListActive(r.Context())
		if err != nil {
			logger.Error("Failed to list vouchers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Vouchers listed", slog.Int("count", len(vouchers)))
		response.Success(w, http.StatusOK, vouchers)
	}
}

// PreviewVoucher godoc
//	@Summary		Preview a voucher against a subtotal
//	@Description	Computes the discount a voucher would give on the supplied subtotal, without applying it to any session. Requires authentication.
//	@Tags			Vouchers
//	@Produce		json
//	@Param			id			path		int						true	"Voucher ID"
//	@Param			subtotal	query		int						true	"Order subtotal in minor currency units"
//	@Success		200			{object}	models.VoucherPreview	"Projected discount"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid voucher id or subtotal"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Voucher not found"
//	@Security		BearerAuth
//	@Router			/vouchers/{id}/preview [get]
func (h *VoucherHandler) PreviewVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized voucher preview attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid voucher id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		subtotal, err := strconv.ParseInt(r.URL.Query().Get("subtotal"), 10, 64)
		if err != nil || subtotal < 0 {
			logger.Warn("Invalid subtotal parameter")
			response.Error(w, errors.BadRequestError("Invalid subtotal parameter"))
			return
		}

		preview, err := h.voucherService.Preview(r.Context(), id, subtotal)
		if err != nil {
			logger.Error("Failed to preview voucher",
				slog.Int64("voucherId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, preview)
	}
}
