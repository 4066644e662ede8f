package weather

import (
	"context"
	"log/slog"

	"weatherify/internal/providers/openmeteo"
	"weatherify/internal/types"
)

// MaxHourlyEntries caps the hourly series at one day of entries.
const MaxHourlyEntries = 24

// ForecastProvider is the upstream forecast API surface the service consumes.
type ForecastProvider interface {
	GetCurrent(ctx context.Context, coords types.Coords) (*openmeteo.ForecastAPIResponse, error)
	GetDaily(ctx context.Context, coords types.Coords) (*openmeteo.ForecastAPIResponse, error)
	GetHourly(ctx context.Context, coords types.Coords) (*openmeteo.ForecastAPIResponse, error)
}

// Service fetches display-ready forecast series for a coordinate. The three
// fetches are independent and idempotent; callers may run them concurrently.
type Service interface {
	Current(ctx context.Context, coords types.Coords) (*types.CurrentConditions, error)
	Daily(ctx context.Context, coords types.Coords) ([]types.DayForecast, error)
	Hourly(ctx context.Context, coords types.Coords) ([]types.HourForecast, error)
}

type weatherService struct {
	provider ForecastProvider
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewForecastClient(logger), logger)
}

func NewServiceWithProvider(provider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Current(ctx context.Context, coords types.Coords) (*types.CurrentConditions, error) {
	apiResp, err := s.provider.GetCurrent(ctx, coords)
	if err != nil {
		s.logger.Error("failed to get current conditions", "error", err)
		return nil, err
	}

	current, err := mapCurrent(apiResp)
	if err != nil {
		s.logger.Error("current conditions response unusable", "error", err)
		return nil, err
	}
	return current, nil
}

func (s *weatherService) Daily(ctx context.Context, coords types.Coords) ([]types.DayForecast, error) {
	apiResp, err := s.provider.GetDaily(ctx, coords)
	if err != nil {
		s.logger.Error("failed to get daily forecast", "error", err)
		return nil, err
	}

	days, truncated, err := mapDaily(apiResp)
	if err != nil {
		s.logger.Error("daily forecast response unusable", "error", err)
		return nil, err
	}
	if truncated {
		s.logger.Warn("daily series arrays had mismatched lengths, truncated to shortest")
	}
	return days, nil
}

func (s *weatherService) Hourly(ctx context.Context, coords types.Coords) ([]types.HourForecast, error) {
	apiResp, err := s.provider.GetHourly(ctx, coords)
	if err != nil {
		s.logger.Error("failed to get hourly forecast", "error", err)
		return nil, err
	}

	hours, truncated, err := mapHourly(apiResp)
	if err != nil {
		s.logger.Error("hourly forecast response unusable", "error", err)
		return nil, err
	}
	if truncated {
		s.logger.Warn("hourly series arrays had mismatched lengths, truncated to shortest")
	}
	return hours, nil
}
