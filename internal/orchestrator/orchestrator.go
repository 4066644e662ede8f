package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"weatherify/internal/cityindex"
	"weatherify/internal/daynight"
	"weatherify/internal/location"
	"weatherify/internal/types"
	"weatherify/internal/weather"
)

// fetchesPerRequest is the fan-out width of one location-change request:
// current conditions, daily series, hourly series, place resolution.
const fetchesPerRequest = 4

// Geocoder resolves a free-text city name to a coordinate.
type Geocoder interface {
	ResolveCoordinates(ctx context.Context, cityName string) (types.Coords, error)
}

// LocationProvider is the injected device-location capability. It delivers at
// most one coordinate fix per call and then stops; repeated fixes require
// repeated calls.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (types.Coords, error)
}

// Deps are the collaborators an Orchestrator coordinates.
type Deps struct {
	Geocoder       Geocoder
	Forecasts      weather.Service
	Places         location.Service
	Cities         *cityindex.Index
	Classifier     *daynight.Classifier
	DeviceLocation LocationProvider
	// OnUpdate, when set, is invoked with a snapshot copy after every applied
	// field update. It runs outside the orchestrator's lock.
	OnUpdate func(Snapshot)
	Logger   *slog.Logger
}

// Orchestrator owns the weather snapshot for the active location. A
// location-change request geocodes (unless a coordinate was supplied
// directly), then fans out the current/daily/hourly fetches and place
// resolution in parallel. Every fetch closure captures the request generation
// active when it was issued; results from superseded generations are
// discarded on arrival, so a slow stale request can never overwrite a fresher
// one. All snapshot writes funnel through one mutex-serialized apply path.
type Orchestrator struct {
	geocoder       Geocoder
	forecasts      weather.Service
	places         location.Service
	cities         *cityindex.Index
	classifier     *daynight.Classifier
	deviceLocation LocationProvider
	onUpdate       func(Snapshot)
	logger         *slog.Logger

	mu       sync.Mutex
	gen      uint64
	pending  int
	snapshot Snapshot
	filtered []types.City

	wg sync.WaitGroup
}

func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		geocoder:       deps.Geocoder,
		forecasts:      deps.Forecasts,
		places:         deps.Places,
		cities:         deps.Cities,
		classifier:     deps.Classifier,
		deviceLocation: deps.DeviceLocation,
		onUpdate:       deps.OnUpdate,
		logger:         deps.Logger.With("component", "orchestrator"),
		snapshot:       Snapshot{State: StateIdle},
		filtered:       deps.Cities.All(),
	}
}

// SelectCity resolves a city name and refreshes the snapshot for it. The
// geocoding step runs synchronously so the caller learns about unknown
// cities; the forecast and place fetches continue in the background. Any
// active search filter is cleared.
func (o *Orchestrator) SelectCity(ctx context.Context, cityName string) error {
	gen := o.begin(cityName, true)

	coords, err := o.geocoder.ResolveCoordinates(ctx, cityName)
	if err != nil {
		o.logger.Warn("geocoding failed, sections stay unavailable", "city", cityName, "error", err)
		o.settle(gen)
		return err
	}

	o.fanOut(ctx, gen, coords, false)
	return nil
}

// UseCoordinate refreshes the snapshot for a known coordinate, skipping
// geocoding. The city name is filled in by reverse geocoding.
func (o *Orchestrator) UseCoordinate(ctx context.Context, coords types.Coords) {
	gen := o.begin("", false)
	o.fanOut(ctx, gen, coords, true)
}

// UseDeviceLocation obtains one device fix from the injected provider and
// refreshes the snapshot for it.
func (o *Orchestrator) UseDeviceLocation(ctx context.Context) error {
	if o.deviceLocation == nil {
		return fmt.Errorf("no device location provider configured")
	}

	coords, err := o.deviceLocation.CurrentLocation(ctx)
	if err != nil {
		o.logger.Warn("device location unavailable", "error", err)
		return err
	}

	o.UseCoordinate(ctx, coords)
	return nil
}

// Search recomputes the filtered city list. Purely local; never touches
// network state or the snapshot.
func (o *Orchestrator) Search(query string) []types.City {
	matched := o.cities.Filter(query)

	o.mu.Lock()
	o.filtered = matched
	o.mu.Unlock()

	return matched
}

// FilteredCities returns the result of the most recent Search, or the full
// list when no filter is active.
func (o *Orchestrator) FilteredCities() []types.City {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.filtered
}

// Snapshot returns a copy of the current aggregate view.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot.clone()
}

// IsNight reports whether it is locally night at the active location. Before
// the location's timezone has resolved this returns the classifier's last
// known answer.
func (o *Orchestrator) IsNight(now time.Time) bool {
	o.mu.Lock()
	tz := o.snapshot.Location.TimezoneID
	o.mu.Unlock()
	return o.classifier.Classify(tz, now)
}

// begin starts a new request generation. The previous snapshot's data is
// superseded, not merged: all fields reset and refill as fetches land.
func (o *Orchestrator) begin(cityName string, clearFilter bool) uint64 {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	o.pending = 0
	o.snapshot = Snapshot{
		State:    StateResolving,
		Location: LocationContext{CityName: cityName},
	}
	if clearFilter {
		o.filtered = o.cities.All()
	}
	snap := o.snapshot.clone()
	o.mu.Unlock()

	o.logger.Debug("starting location-change request", "generation", gen, "city", cityName)
	o.notify(snap)
	return gen
}

func (o *Orchestrator) fanOut(ctx context.Context, gen uint64, coords types.Coords, fromDevice bool) {
	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		return
	}
	o.pending = fetchesPerRequest
	o.mu.Unlock()

	// The fetches outlive the caller. An HTTP handler's request context is
	// canceled as soon as the handler returns, which would abort every
	// in-flight fetch, so the background work runs on a detached context that
	// keeps the caller's values but not its cancellation.
	ctx = context.WithoutCancel(ctx)

	o.spawn(gen, func() {
		current, err := o.forecasts.Current(ctx, coords)
		if err != nil {
			o.logger.Warn("current conditions unavailable", "error", err)
			return
		}
		o.apply(gen, func(s *Snapshot) { s.Current = current })
	})

	o.spawn(gen, func() {
		daily, err := o.forecasts.Daily(ctx, coords)
		if err != nil {
			o.logger.Warn("daily forecast unavailable", "error", err)
			return
		}
		o.apply(gen, func(s *Snapshot) { s.Daily = daily })
	})

	o.spawn(gen, func() {
		hourly, err := o.forecasts.Hourly(ctx, coords)
		if err != nil {
			o.logger.Warn("hourly forecast unavailable", "error", err)
			return
		}
		o.apply(gen, func(s *Snapshot) { s.Hourly = hourly })
	})

	o.spawn(gen, func() {
		place, err := o.places.Resolve(ctx, coords)
		if err != nil {
			o.logger.Warn("place resolution unavailable", "error", err)
			return
		}
		o.apply(gen, func(s *Snapshot) {
			s.Location.TimezoneID = place.TimezoneID
			if fromDevice && place.Locality != "" {
				s.Location.CityName = place.Locality
			}
		})
	})
}

// spawn runs one fetch in its own goroutine and settles the request when it
// finishes, successfully or not.
func (o *Orchestrator) spawn(gen uint64, fetch func()) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		fetch()
		o.settle(gen)
	}()
}

// apply mutates the snapshot and publishes it, unless the result belongs to a
// superseded generation, in which case it is discarded.
func (o *Orchestrator) apply(gen uint64, mutate func(*Snapshot)) {
	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		o.logger.Debug("discarding stale response", "generation", gen)
		return
	}
	mutate(&o.snapshot)
	snap := o.snapshot.clone()
	o.mu.Unlock()

	o.notify(snap)
}

// settle retires one in-flight fetch of the given generation and marks the
// request populated once none remain.
func (o *Orchestrator) settle(gen uint64) {
	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		return
	}
	if o.pending > 0 {
		o.pending--
	}
	if o.pending != 0 {
		o.mu.Unlock()
		return
	}
	o.snapshot.State = StatePopulated
	snap := o.snapshot.clone()
	o.mu.Unlock()

	o.logger.Debug("location-change request settled", "generation", gen)
	o.notify(snap)
}

func (o *Orchestrator) notify(snap Snapshot) {
	if o.onUpdate != nil {
		o.onUpdate(snap)
	}
}
