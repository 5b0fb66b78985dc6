// Package catalog talks to the storefront REST backend for product and
// order snapshots.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/metrics"
)

// Fetcher retrieves catalog data for the assistant's snapshot. Orders is
// only called for signed-in identities; token is the user's raw bearer
// token for the storefront backend.
type Fetcher interface {
	Products(ctx context.Context) ([]model.Product, error)
	Orders(ctx context.Context, token string) ([]model.Order, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a backend client. baseURL must not end with a slash.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// Products fetches the full product snapshot from GET /products/.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	start := time.Now()
	var products []model.Product
	err := c.getJSON(ctx, "/products/", "", &products)
	metrics.RecordCatalogFetch("products", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// Orders fetches the signed-in user's orders from GET /orders/my-orders/.
// The backend returns them most-recent first.
func (c *Client) Orders(ctx context.Context, token string) ([]model.Order, error) {
	start := time.Now()
	var orders []model.Order
	err := c.getJSON(ctx, "/orders/my-orders/", token, &orders)
	metrics.RecordCatalogFetch("orders", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
