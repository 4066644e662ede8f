package orchestrator

import "weatherify/internal/types"

// State describes where the orchestrator is in its resolution cycle.
type State string

const (
	// StateIdle means no location has been requested yet.
	StateIdle State = "idle"
	// StateResolving means a location-change request is in flight.
	StateResolving State = "resolving"
	// StatePopulated means the latest request has finished; sections whose
	// fetch failed stay empty.
	StatePopulated State = "populated"
)

// LocationContext names the active location. TimezoneID resolves through a
// separate reverse-geocode call and may briefly lag CityName.
type LocationContext struct {
	CityName   string `json:"city_name"`
	TimezoneID string `json:"timezone_id,omitempty"`
}

// Snapshot is the aggregate view of conditions for the active location. Each
// field is published atomically as its fetch completes; fields may arrive in
// any order and there is no cross-field transactionality. A nil Current or
// empty series means that section is unavailable for the current request.
type Snapshot struct {
	State    State                    `json:"state"`
	Location LocationContext          `json:"location"`
	Current  *types.CurrentConditions `json:"current,omitempty"`
	Daily    []types.DayForecast      `json:"daily,omitempty"`
	Hourly   []types.HourForecast     `json:"hourly,omitempty"`
}

// clone returns a copy safe to hand out. Field values are replaced wholesale
// on update and never mutated in place, so copying the slice headers and the
// Current pointer's value is enough.
func (s Snapshot) clone() Snapshot {
	out := s
	if s.Current != nil {
		current := *s.Current
		out.Current = &current
	}
	return out
}
