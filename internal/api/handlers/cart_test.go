package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestGetCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Cart Returned", func(t *testing.T) {
		// Arrange
		expectedCart := &models.Cart{Items: checkoutItems()}
		mockCartService.On("Get", mock.Anything, userID).Return(expectedCart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/cart", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, _ := json.Marshal(resp.Data)
		var cart models.Cart
		err = json.Unmarshal(dataBytes, &cart)
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 2)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockCartService.AssertNotCalled(t, "Get")
	})
}

func TestAddItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		addReq := models.AddCartItemRequest{ProductVariantID: 11, Quantity: 1}
		expectedCart := &models.Cart{Items: checkoutItems()}

		mockCartService.On("AddItem", mock.Anything, userID, mock.MatchedBy(func(req *models.AddCartItemRequest) bool {
			return req.ProductVariantID == 11 && req.Quantity == 1
		})).Return(expectedCart, nil).Once()

		bodyBytes, _ := json.Marshal(addReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Quantity", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(models.AddCartItemRequest{ProductVariantID: 11, Quantity: 0})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "AddItem")
	})

	t.Run("Failure - Backend Rejected", func(t *testing.T) {
		// Arrange
		mockCartService.On("AddItem", mock.Anything, userID, mock.AnythingOfType("*models.AddCartItemRequest")).
			Return(nil, appErrors.GatewayError("Product variant is out of stock")).Once()

		bodyBytes, _ := json.Marshal(models.AddCartItemRequest{ProductVariantID: 11, Quantity: 1})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestUpdateQuantity(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Quantity Updated", func(t *testing.T) {
		// Arrange
		updateReq := models.UpdateQuantityRequest{ProductVariantID: 11, Quantity: 3}
		expectedCart := &models.Cart{Items: checkoutItems()}

		mockCartService.On("UpdateQuantity", mock.Anything, userID, mock.MatchedBy(func(req *models.UpdateQuantityRequest) bool {
			return req.ProductVariantID == 11 && req.Quantity == 3
		})).Return(expectedCart, nil).Once()

		bodyBytes, _ := json.Marshal(updateReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestRemoveItems(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Items Removed", func(t *testing.T) {
		// Arrange
		removeReq := models.RemoveCartItemsRequest{ProductVariantIDs: []int64{11, 12}}
		expectedCart := &models.Cart{Items: []models.CartLineItem{}}

		mockCartService.On("RemoveItems", mock.Anything, userID, mock.MatchedBy(func(req *models.RemoveCartItemsRequest) bool {
			return len(req.ProductVariantIDs) == 2
		})).Return(expectedCart, nil).Once()

		bodyBytes, _ := json.Marshal(removeReq)
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Empty ID List", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(models.RemoveCartItemsRequest{ProductVariantIDs: []int64{}})
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart/items", bytes.NewReader(bodyBytes), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "RemoveItems")
	})
}

func TestGetCount(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Count Returned", func(t *testing.T) {
		// Arrange
		mockCartService.On("Count", mock.Anything, userID).Return(3, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/cart/count", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCount().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, _ := json.Marshal(resp.Data)
		var count models.CartCountResponse
		err = json.Unmarshal(dataBytes, &count)
		assert.NoError(t, err)
		assert.Equal(t, 3, count.Count)

		mockCartService.AssertExpectations(t)
	})
}
