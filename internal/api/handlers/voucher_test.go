package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/api/handlers"
	appErrors "github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/services/mocks"
	"github.com/KimTien0410/shop-checkout/internal/testutils"
	"github.com/KimTien0410/shop-checkout/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListVouchers(t *testing.T) {
	mockVoucherService := new(mocks.VoucherService)
	voucherHandler := handlers.NewVoucherHandler(mockVoucherService)
	userID := uuid.New()

	t.Run("Success - Active Vouchers Returned", func(t *testing.T) {
		// Arrange
		now := time.Now()
		vouchers := []models.Voucher{
			{
				VoucherID:     7,
				VoucherCode:   "SUMMER10",
				DiscountType:  models.DiscountTypePercentage,
				DiscountValue: 10,
				StartDate:     now.Add(-24 * time.Hour),
				EndDate:       now.Add(24 * time.Hour),
			},
		}
		mockVoucherService.On("ListActive", mock.Anything).Return(vouchers, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/vouchers", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		voucherHandler.ListVouchers().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, _ := json.Marshal(resp.Data)
		var got []models.Voucher
		err = json.Unmarshal(dataBytes, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "SUMMER10", got[0].VoucherCode)

		mockVoucherService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/vouchers", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		voucherHandler.ListVouchers().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockVoucherService.AssertNotCalled(t, "ListActive")
	})
}

func TestPreviewVoucher(t *testing.T) {
	mockVoucherService := new(mocks.VoucherService)
	voucherHandler := handlers.NewVoucherHandler(mockVoucherService)
	userID := uuid.New()

	t.Run("Success - Discount Projected", func(t *testing.T) {
		// Arrange
		preview := &models.VoucherPreview{
			Voucher:  models.Voucher{VoucherID: 7, VoucherCode: "SUMMER10"},
			Eligible: true,
			Discount: 39000,
		}
		mockVoucherService.On("Preview", mock.Anything, int64(7), int64(390000)).Return(preview, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/vouchers/7/preview?subtotal=390000", nil, userID,
			map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		voucherHandler.PreviewVoucher().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, _ := json.Marshal(resp.Data)
		var got models.VoucherPreview
		err = json.Unmarshal(dataBytes, &got)
		assert.NoError(t, err)
		assert.True(t, got.Eligible)
		assert.Equal(t, int64(39000), got.Discount)

		mockVoucherService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Subtotal", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/vouchers/7/preview", nil, userID,
			map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		voucherHandler.PreviewVoucher().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockVoucherService.AssertNotCalled(t, "Preview")
	})

	t.Run("Failure - Voucher Not Found", func(t *testing.T) {
		// Arrange
		mockVoucherService.On("Preview", mock.Anything, int64(99), int64(390000)).
			Return(nil, appErrors.NotFoundError("Voucher not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/vouchers/99/preview?subtotal=390000", nil, userID,
			map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		// Act
		voucherHandler.PreviewVoucher().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockVoucherService.AssertExpectations(t)
	})
}
