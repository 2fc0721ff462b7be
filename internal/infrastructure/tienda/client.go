package tienda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/despensa/backend/internal/domain"
)

// Client fetches product detail documents from the retailer's product API.
// Requests are spaced out by the configured delay so the remote source never
// sees a burst, regardless of how the caller schedules fetches.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	timeout    time.Duration
}

// NewClient creates a new product API client. requestDelay is the minimum
// spacing between outbound requests; zero disables throttling. timeout
// bounds each individual fetch.
func NewClient(userAgent string, requestDelay, timeout time.Duration) *Client {
	var limiter *rate.Limiter
	if requestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(requestDelay), 1)
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		limiter:   limiter,
		timeout:   timeout,
	}
}

// FetchDetail retrieves and maps the detail document for one product URL.
// Non-2xx statuses and malformed payloads are both fetch failures; the
// caller decides how to degrade.
func (c *Client) FetchDetail(ctx context.Context, productURL string) (*domain.ProductDetail, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProductFetchFailure, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductFetchFailure, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProductFetchFailure, resp.StatusCode)
	}

	var product wireProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductFetchFailure, err)
	}

	return mapToProductDetail(&product), nil
}
