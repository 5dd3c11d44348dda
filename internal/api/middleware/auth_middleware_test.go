package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/api/middleware"
	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(userID uuid.UUID, email string, duration time.Duration, key []byte) (string, error) {
	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(key)
}

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()
	userEmail := "test@example.com"

	validToken, err := createTestToken(userID, userEmail, time.Hour, testJwtKey)
	require.NoError(t, err)

	// Mock handler verifying the context the middleware is expected to build:
	// the parsed claims plus the raw credential for backend pass-through.
	mockNextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userEmail, claims.Email)

		token, ok := gateway.TokenFromContext(r.Context())
		require.True(t, ok, "Raw token should be in context")
		assert.Equal(t, validToken, token)

		logger := middleware.LoggerFromContext(r.Context())
		require.NotNil(t, logger)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Invalid Token (Malformed)",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name: "Fail - Invalid Token (Wrong Signing Key)",
			authHeader: func() string {
				wrongKey := []byte("different-secret-key-0987654321")
				token, err := createTestToken(userID, userEmail, time.Hour, wrongKey)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name: "Fail - Expired Token",
			authHeader: func() string {
				token, err := createTestToken(userID, userEmail, -time.Hour, testJwtKey)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			// Add a base logger to the context, simulating the Logging middleware
			baseLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
			ctx := context.WithValue(req.Context(), middleware.LoggerKey, baseLogger)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()

			handlerToTest := authMiddleware.Authenticate(mockNextHandler)

			// Act
			handlerToTest.ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Unexpected response body")
			}
		})
	}
}

func TestNewAuthMiddleware(t *testing.T) {
	key := []byte("some-key")
	mw := middleware.NewAuthMiddleware(key)
	assert.NotNil(t, mw, "Middleware should not be nil")
}
