package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KimTien0410/shop-checkout/internal/api/handlers"
	appErrors "github.com/KimTien0410/shop-checkout/internal/errors"
	gatewaymocks "github.com/KimTien0410/shop-checkout/internal/gateway/mocks"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/testutils"
	"github.com/KimTien0410/shop-checkout/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReferenceHandler() (*handlers.ReferenceHandler, *gatewaymocks.AddressGateway, *gatewaymocks.PaymentMethodGateway, *gatewaymocks.DeliveryMethodGateway) {
	addresses := new(gatewaymocks.AddressGateway)
	payments := new(gatewaymocks.PaymentMethodGateway)
	delivery := new(gatewaymocks.DeliveryMethodGateway)

	return handlers.NewReferenceHandler(addresses, payments, delivery), addresses, payments, delivery
}

func TestListAddresses(t *testing.T) {
	referenceHandler, mockAddresses, _, _ := newReferenceHandler()
	userID := uuid.New()

	t.Run("Success - Addresses Returned", func(t *testing.T) {
		// Arrange
		addresses := []models.Address{
			{AddressID: 1, ReceiverName: "Nguyen Van A", City: "Ho Chi Minh City", IsDefault: true},
			{AddressID: 2, ReceiverName: "Nguyen Van A", City: "Ha Noi"},
		}
		mockAddresses.On("ListAddresses", mock.Anything).Return(addresses, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/addresses", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.ListAddresses().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, _ := json.Marshal(resp.Data)
		var got []models.Address
		err = json.Unmarshal(dataBytes, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.True(t, got[0].IsDefault)

		mockAddresses.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/addresses", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.ListAddresses().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAddresses.AssertNotCalled(t, "ListAddresses")
	})
}

func TestGetDefaultAddress(t *testing.T) {
	referenceHandler, mockAddresses, _, _ := newReferenceHandler()
	userID := uuid.New()

	t.Run("Success - Default Address Returned", func(t *testing.T) {
		// Arrange
		address := &models.Address{AddressID: 1, ReceiverName: "Nguyen Van A", IsDefault: true}
		mockAddresses.On("DefaultAddress", mock.Anything).Return(address, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/addresses/default", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.GetDefaultAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockAddresses.AssertExpectations(t)
	})

	t.Run("Failure - No Default Set", func(t *testing.T) {
		// Arrange
		mockAddresses.On("DefaultAddress", mock.Anything).
			Return(nil, appErrors.NotFoundError("No default address")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/addresses/default", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.GetDefaultAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockAddresses.AssertExpectations(t)
	})
}

func TestListPaymentMethods(t *testing.T) {
	referenceHandler, _, mockPayments, _ := newReferenceHandler()
	userID := uuid.New()

	t.Run("Success - Methods Returned", func(t *testing.T) {
		// Arrange
		methods := []models.PaymentMethod{
			{PaymentMethodID: 1, Name: "Cash on Delivery"},
			{PaymentMethodID: 2, Name: "VNPay", RequiresRedirect: true},
		}
		mockPayments.On("ListPaymentMethods", mock.Anything).Return(methods, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/payment-methods", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.ListPaymentMethods().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, _ := json.Marshal(resp.Data)
		var got []models.PaymentMethod
		err = json.Unmarshal(dataBytes, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.True(t, got[1].RequiresRedirect)

		mockPayments.AssertExpectations(t)
	})
}

func TestListDeliveryMethods(t *testing.T) {
	referenceHandler, _, _, mockDelivery := newReferenceHandler()
	userID := uuid.New()

	t.Run("Success - Methods Returned", func(t *testing.T) {
		// Arrange
		methods := []models.ShippingMethod{
			{DeliveryMethodID: 1, Name: "Standard", DeliveryFee: "30000"},
			{DeliveryMethodID: 2, Name: "Express", DeliveryFee: "45000.5"},
		}
		mockDelivery.On("ListDeliveryMethods", mock.Anything).Return(methods, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/delivery-methods", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.ListDeliveryMethods().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, _ := json.Marshal(resp.Data)
		var got []models.ShippingMethod
		err = json.Unmarshal(dataBytes, &got)
		assert.NoError(t, err)
		assert.Equal(t, "30000", got[0].DeliveryFee)

		mockDelivery.AssertExpectations(t)
	})

	t.Run("Failure - Backend Unavailable", func(t *testing.T) {
		// Arrange
		mockDelivery.On("ListDeliveryMethods", mock.Anything).
			Return(nil, appErrors.GatewayError("Backend request failed")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/delivery-methods", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		referenceHandler.ListDeliveryMethods().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		mockDelivery.AssertExpectations(t)
	})
}
