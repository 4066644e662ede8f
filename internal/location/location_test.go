package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"weatherify/internal/providers/openstreetmap"
	"weatherify/internal/types"
)

// Mock providers for testing

type mockReverseProvider struct {
	response *openstreetmap.ReverseAPIResponse
	err      error
}

func (m *mockReverseProvider) Reverse(ctx context.Context, coords types.Coords) (*openstreetmap.ReverseAPIResponse, error) {
	return m.response, m.err
}

type mockTimezoneService struct {
	id  string
	err error
}

func (m *mockTimezoneService) Resolve(coords types.Coords) (string, error) {
	return m.id, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func respWithCity(city string) *openstreetmap.ReverseAPIResponse {
	var r openstreetmap.ReverseAPIResponse
	r.Address.City = city
	return &r
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		reverseResp  *openstreetmap.ReverseAPIResponse
		reverseErr   error
		tzID         string
		tzErr        error
		wantErr      bool
		wantLocality string
		wantTimezone string
	}{
		{
			name:         "both halves succeed",
			reverseResp:  respWithCity("Adelaide"),
			tzID:         "Australia/Adelaide",
			wantLocality: "Adelaide",
			wantTimezone: "Australia/Adelaide",
		},
		{
			name:         "no usable locality falls back to Unknown",
			reverseResp:  &openstreetmap.ReverseAPIResponse{},
			tzID:         "Australia/Adelaide",
			wantLocality: "Unknown",
			wantTimezone: "Australia/Adelaide",
		},
		{
			name:         "timezone failure does not block locality",
			reverseResp:  respWithCity("Adelaide"),
			tzErr:        errors.New("no polygon match"),
			wantLocality: "Adelaide",
			wantTimezone: "",
		},
		{
			name:         "reverse failure does not block timezone",
			reverseErr:   errors.New("network down"),
			tzID:         "Europe/London",
			wantLocality: "",
			wantTimezone: "Europe/London",
		},
		{
			name:       "both halves failing is an error",
			reverseErr: errors.New("network down"),
			tzErr:      errors.New("no polygon match"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceWithProviders(
				&mockReverseProvider{response: tt.reverseResp, err: tt.reverseErr},
				&mockTimezoneService{id: tt.tzID, err: tt.tzErr},
				discardLogger(),
			)

			place, err := svc.Resolve(context.Background(), types.NewCoords(-34.92, 138.59))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if place.Locality != tt.wantLocality {
				t.Errorf("Locality = %q, want %q", place.Locality, tt.wantLocality)
			}
			if place.TimezoneID != tt.wantTimezone {
				t.Errorf("TimezoneID = %q, want %q", place.TimezoneID, tt.wantTimezone)
			}
		})
	}
}
