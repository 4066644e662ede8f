package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"weatherify/internal/types"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=-34.92&longitude=138.59&current_weather=true&daily=temperature_2m_max,temperature_2m_min&timezone=auto
const baseForecastURL = "https://api.open-meteo.com"

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		breaker:    newBreaker("openmeteo-forecast"),
		logger:     logger.With("component", "forecast-client"),
	}
}

func (c *ForecastClient) forecastURL(coords types.Coords, params map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/v1/forecast"
	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	for key, value := range params {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GetCurrent fetches the current conditions block together with today's
// min/max temperatures.
func (c *ForecastClient) GetCurrent(ctx context.Context, coords types.Coords) (*ForecastAPIResponse, error) {
	return c.get(ctx, coords, map[string]string{
		"current_weather": "true",
		"daily":           "temperature_2m_max,temperature_2m_min",
		"timezone":        "auto",
	})
}

// GetDaily fetches the multi-day series.
func (c *ForecastClient) GetDaily(ctx context.Context, coords types.Coords) (*ForecastAPIResponse, error) {
	return c.get(ctx, coords, map[string]string{
		"daily":    "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode",
		"timezone": "auto",
	})
}

// GetHourly fetches the hourly series.
func (c *ForecastClient) GetHourly(ctx context.Context, coords types.Coords) (*ForecastAPIResponse, error) {
	return c.get(ctx, coords, map[string]string{
		"hourly":   "temperature_2m,weathercode,precipitation_probability",
		"timezone": "auto",
	})
}

func (c *ForecastClient) get(ctx context.Context, coords types.Coords, params map[string]string) (*ForecastAPIResponse, error) {
	u, err := c.forecastURL(coords, params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching forecast", "url", u)

	var apiResp ForecastAPIResponse
	if err := fetchJSON(ctx, c.httpClient, c.breaker, u, &apiResp); err != nil {
		c.logger.Error("forecast request failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return &apiResp, nil
}
