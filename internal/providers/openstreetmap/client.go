package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"weatherify/internal/types"
	apperrors "weatherify/pkg/errors"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=-34.92&lon=138.59&format=json
const baseURL = "https://nominatim.openstreetmap.org"

// Nominatim's usage policy caps anonymous clients at one request per second
// and requires an identifying User-Agent.
const (
	requestsPerSecond = 1
	userAgent         = "weatherify/1.0"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Reverse looks up the address parts for a coordinate.
func (c *Client) Reverse(ctx context.Context, coords types.Coords) (*ReverseAPIResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewNetworkError("rate limit wait canceled", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/reverse"
	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", coords.Latitude))
	q.Set("lon", fmt.Sprintf("%f", coords.Longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("reverse geocoding request failed", "error", err)
		return nil, apperrors.NewNetworkError("failed to fetch", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("reverse geocoding returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apperrors.NewNetworkError("fetch returned status "+resp.Status, nil)
	}

	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode reverse geocoding response", "error", err)
		return nil, apperrors.NewDecodeError("failed to decode response", err)
	}

	return &apiResp, nil
}
