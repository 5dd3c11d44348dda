// Package gateway holds the typed REST clients for the remote commerce
// backend. Every call passes the caller's bearer token through and maps any
// transport or non-success response onto the service error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/KimTien0410/shop-checkout/internal/config"
	apperrors "github.com/KimTien0410/shop-checkout/internal/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type tokenContextKey struct{}

// WithToken stores the raw bearer credential on the context so outbound
// backend calls can forward it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok {
		return token
	}

	return ""
}

// envelope is the backend's response wrapper. Message is only populated on
// failures and is surfaced to the caller as error detail.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Backend) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError("Failed to encode backend request").WithError(err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")

	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.GatewayError("Backend request failed").WithError(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.GatewayError("Failed to read backend response").WithError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {

		appErr := apperrors.GatewayError(fmt.Sprintf("Backend returned status %d", resp.StatusCode))

		var env envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Message != "" {
			appErr = appErr.WithDetail(env.Message)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return apperrors.UnauthorizedError("Backend rejected the credential").WithError(appErr)
		}

		return appErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return apperrors.GatewayError("Failed to decode backend response").WithError(err)
	}

	if len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.GatewayError("Unexpected backend response shape").WithError(err)
	}

	return nil
}
