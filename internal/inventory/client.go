package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cimillas/ultimate-shop/services/order/internal/domain"
)

const defaultRequestTimeout = 5 * time.Second

// Client queries the inventory service for stock availability.
// The call is a pure read: GET /api/inventory?skuCode=...&quantity=...
// answering a bare JSON boolean.
type Client struct {
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (useful for tests).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	cl := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// IsInStock reports whether the inventory service can cover quantity units
// of the given SKU. Transport and decoding failures wrap
// domain.ErrInventoryUnavailable so callers can distinguish "unknown" from
// a definitive no.
func (c *Client) IsInStock(ctx context.Context, skuCode string, quantity int) (bool, error) {
	q := url.Values{}
	q.Set("skuCode", skuCode)
	q.Set("quantity", strconv.Itoa(quantity))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/inventory?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("build inventory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrInventoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: unexpected status %d", domain.ErrInventoryUnavailable, resp.StatusCode)
	}

	var inStock bool
	if err := json.NewDecoder(resp.Body).Decode(&inStock); err != nil {
		return false, fmt.Errorf("%w: decode response: %v", domain.ErrInventoryUnavailable, err)
	}
	return inStock, nil
}
