package nhtsa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
	"github.com/custodia-labs/autodata/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.VehicleDataSource = (*Client)(nil)

// maxErrorBody bounds how much of an error response is kept as the message.
const maxErrorBody = 512

// Client issues requests to the NHTSA services.
type Client struct {
	http *http.Client
	cfg  Config
}

// NewClient creates a new NHTSA client.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		http: httpClient,
		cfg:  cfg,
	}
}

// fetchJSON performs a GET on endpoint with query and decodes the body into out.
func (c *Client) fetchJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("GET %s failed after %s: %v", u, time.Since(start), err)
		return fmt.Errorf("get %s: %w: %w", u, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	logger.Debug("GET %s -> %d (%s)", u, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			URL:        u,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w: %w", u, domain.ErrUpstream, err)
	}
	return nil
}
