package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	apperrors "weatherify/pkg/errors"
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// fetchJSON performs a GET through the circuit breaker and decodes the JSON
// body into out. Transport failures and non-200 statuses surface as network
// errors, malformed bodies as decode errors. The status check runs inside the
// breaker's closure so a persistently failing upstream trips the circuit.
func fetchJSON(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, url string, out any) error {
	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func(body io.ReadCloser) {
			_ = body.Close()
		}(resp.Body)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch returned status %s: %s", resp.Status, body)
		}

		return body, nil
	})
	if err != nil {
		return apperrors.NewNetworkError("failed to fetch", err)
	}

	if err := json.Unmarshal(result.([]byte), out); err != nil {
		return apperrors.NewDecodeError("failed to decode response", err)
	}

	return nil
}
