package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"weatherify/internal/types"
	apperrors "weatherify/pkg/errors"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Adelaide
const baseGeocodingURL = "https://geocoding-api.open-meteo.com"

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewGeocodingClient(logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: &http.Client{},
		baseURL:    baseGeocodingURL,
		breaker:    newBreaker("openmeteo-geocoding"),
		logger:     logger.With("component", "geocoding-client"),
	}
}

// ResolveCoordinates resolves a free-text city name to a coordinate pair.
// The first result wins; ties among same-named cities in different countries
// are broken by provider order. An empty result set is a not-found error.
func (c *GeocodingClient) ResolveCoordinates(ctx context.Context, cityName string) (types.Coords, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/v1/search"
	q := u.Query()
	q.Set("name", cityName)
	u.RawQuery = q.Encode()

	c.logger.Debug("resolving coordinates", "city", cityName)

	var apiResp GeocodingAPIResponse
	if err := fetchJSON(ctx, c.httpClient, c.breaker, u.String(), &apiResp); err != nil {
		c.logger.Error("geocoding request failed", "city", cityName, "error", err)
		return types.Coords{}, err
	}

	if len(apiResp.Results) == 0 {
		c.logger.Debug("no geocoding results", "city", cityName)
		return types.Coords{}, apperrors.NewNotFoundError("no coordinates found for " + cityName)
	}

	first := apiResp.Results[0]

	c.logger.Debug("resolved coordinates",
		"city", cityName,
		"latitude", first.Latitude,
		"longitude", first.Longitude,
	)

	return types.NewCoords(first.Latitude, first.Longitude), nil
}
