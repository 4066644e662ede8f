package openmeteo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "weatherify/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGeocodingClient(serverURL string) *GeocodingClient {
	return &GeocodingClient{
		httpClient: &http.Client{},
		baseURL:    serverURL,
		breaker:    newBreaker("test-geocoding"),
		logger:     testLogger(),
	}
}

func TestGeocodingClient_ResolveCoordinates(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Path; got != "/v1/search" {
				t.Errorf("path = %q, want /v1/search", got)
			}
			if got := r.URL.Query().Get("name"); got != "São Paulo" {
				t.Errorf("name query = %q, want São Paulo", got)
			}
			_, _ = w.Write([]byte(`{"results":[
				{"name":"São Paulo","latitude":-23.55,"longitude":-46.63,"country_code":"BR"},
				{"name":"São Paulo","latitude":1.0,"longitude":2.0,"country_code":"PT"}
			]}`))
		}))
		defer srv.Close()

		coords, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "São Paulo")
		if err != nil {
			t.Fatalf("ResolveCoordinates returned error: %v", err)
		}
		if coords.Latitude != -23.55 || coords.Longitude != -46.63 {
			t.Errorf("coords = %+v, want first provider result", coords)
		}
	})

	t.Run("empty result set is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		_, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "Nowhereville")
		if !apperrors.IsNotFoundError(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("absent results key is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
		}))
		defer srv.Close()

		_, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "Nowhereville")
		if !apperrors.IsNotFoundError(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("malformed body is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":`))
		}))
		defer srv.Close()

		_, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "Adelaide")
		if !apperrors.IsDecodeError(err) {
			t.Errorf("expected decode error, got %v", err)
		}
	})

	t.Run("server error is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "Adelaide")
		if !apperrors.IsNetworkError(err) {
			t.Errorf("expected network error, got %v", err)
		}
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestGeocodingClient(srv.URL).ResolveCoordinates(context.Background(), "Adelaide")
		if !apperrors.IsNetworkError(err) {
			t.Errorf("expected network error, got %v", err)
		}
	})
}
