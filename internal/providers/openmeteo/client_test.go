package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"

	apperrors "weatherify/pkg/errors"
)

func TestFetchJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out struct{}
	err := fetchJSON(context.Background(), &http.Client{}, newBreaker("test-status"), srv.URL, &out)
	if !apperrors.IsNetworkError(err) {
		t.Fatalf("expected network error for HTTP 500, got %v", err)
	}
}

// HTTP error statuses must count as breaker failures, so a persistently
// failing upstream opens the circuit and later calls fail without a request.
func TestBreakerOpensOnConsecutiveStatusErrors(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &http.Client{}
	cb := newBreaker("test-open")

	// Default trip condition: more than 5 consecutive failures.
	var out struct{}
	for i := 0; i < 6; i++ {
		if err := fetchJSON(context.Background(), client, cb, srv.URL, &out); !apperrors.IsNetworkError(err) {
			t.Fatalf("call %d: expected network error, got %v", i, err)
		}
	}
	if got := requests.Load(); got != 6 {
		t.Fatalf("requests before opening = %d, want 6", got)
	}

	err := fetchJSON(context.Background(), client, cb, srv.URL, &out)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open-circuit error, got %v", err)
	}
	if got := requests.Load(); got != 6 {
		t.Errorf("requests after opening = %d, want 6 (no request while open)", got)
	}
}
