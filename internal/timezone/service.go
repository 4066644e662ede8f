package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"weatherify/internal/types"
)

// Service resolves a coordinate to its IANA timezone identifier.
type Service interface {
	Resolve(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service. The tzf
// finder loads its polygon data into memory (~50MB), so one instance is
// shared process-wide. Lookups on the finder are safe for concurrent use.
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{finder: finder}
	})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("timezone finder unavailable")
	}
	return instance, nil
}

// Resolve returns identifiers like "Australia/Adelaide" or "Europe/London".
func (s *service) Resolve(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f",
			coords.Latitude, coords.Longitude)
	}
	return name, nil
}
