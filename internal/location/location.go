package location

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"weatherify/internal/providers/openstreetmap"
	"weatherify/internal/timezone"
	"weatherify/internal/types"
)

// UnknownLocality is the placeholder used when the reverse-geocode provider
// returns a result without any usable locality name.
const UnknownLocality = "Unknown"

// Place is the resolved human context of a coordinate. TimezoneID is empty
// when timezone resolution failed; that must not block the rest of the
// pipeline.
type Place struct {
	Locality   string
	TimezoneID string
}

// Service resolves a coordinate to a Place.
type Service interface {
	Resolve(ctx context.Context, coords types.Coords) (Place, error)
}

// ReverseGeocodeProvider defines the interface for locality data providers
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, coords types.Coords) (*openstreetmap.ReverseAPIResponse, error)
}

type locationService struct {
	reverseProvider ReverseGeocodeProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewService creates a location service with the real provider clients.
func NewService(logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewServiceWithProviders(openstreetmap.NewClient(logger), tzSvc, logger), nil
}

// NewServiceWithProviders creates a location service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	reverseProvider ReverseGeocodeProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		reverseProvider: reverseProvider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve calls the reverse-geocode provider and the timezone service in
// parallel. Either half may fail on its own: a failed reverse geocode leaves
// Locality empty, a failed timezone lookup leaves TimezoneID empty. An error
// is returned only when both halves fail.
func (s *locationService) Resolve(ctx context.Context, coords types.Coords) (Place, error) {
	var (
		wg          sync.WaitGroup
		reverseResp *openstreetmap.ReverseAPIResponse
		tzID        string
		reverseErr  error
		tzErr       error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		reverseResp, reverseErr = s.reverseProvider.Reverse(ctx, coords)
	}()

	go func() {
		defer wg.Done()
		tzID, tzErr = s.timezoneService.Resolve(coords)
	}()

	wg.Wait()

	if reverseErr != nil && tzErr != nil {
		return Place{}, fmt.Errorf("multiple errors: reverse geocode: %v; timezone: %v", reverseErr, tzErr)
	}

	var place Place

	if reverseErr != nil {
		s.logger.Warn("reverse geocode failed, locality unavailable",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", reverseErr,
		)
	} else {
		place.Locality = reverseResp.Locality()
		if place.Locality == "" {
			place.Locality = UnknownLocality
		}
	}

	if tzErr != nil {
		s.logger.Warn("timezone resolution failed, continuing without it",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", tzErr,
		)
	} else {
		place.TimezoneID = tzID
	}

	s.logger.Debug("resolved place",
		"locality", place.Locality,
		"timezone", place.TimezoneID,
	)

	return place, nil
}
