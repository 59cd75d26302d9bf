package rpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/skyops/trips-gateway/internal/metrics"
)

// backendClient is the shared transport for both backend services: a resty
// client guarded by a circuit breaker. Only transport errors and 5xx responses
// count as breaker failures; 4xx responses carry backend outcomes (not found,
// conflict) and are returned for the caller to map.
type backendClient struct {
	name    string
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func newBackendClient(name, baseURL string, timeout time.Duration) *backendClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(_ string, _ gobreaker.State, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.BreakerState.WithLabelValues(name).Set(state)
		},
	})
	metrics.BreakerState.WithLabelValues(name).Set(0)

	return &backendClient{
		name: name,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(0), // transient failures propagate, never retried here
		breaker: breaker,
	}
}

// do issues one request through the circuit breaker. result, when non-nil, is
// unmarshalled from 2xx response bodies.
func (c *backendClient) do(ctx context.Context, op, method, path string, body, result any) (*resty.Response, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		req := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Correlation-ID", uuid.New().String())
		if body != nil {
			req.SetBody(body)
		}
		if result != nil {
			req.SetResult(result)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", c.name, op, err)
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%s %s: backend returned status %d: %s",
				c.name, op, resp.StatusCode(), resp.String())
		}
		return resp, nil
	})
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(c.name, op, "error").Inc()
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("%s %s: %w", c.name, op, err)
		}
		return nil, err
	}

	resp := out.(*resty.Response)
	outcome := "ok"
	if resp.IsError() {
		outcome = fmt.Sprintf("http_%d", resp.StatusCode())
	}
	metrics.BackendRequestsTotal.WithLabelValues(c.name, op, outcome).Inc()
	return resp, nil
}

// unexpectedStatus reports a response status no mapping exists for.
func (c *backendClient) unexpectedStatus(op string, resp *resty.Response) error {
	return fmt.Errorf("%s %s: unexpected status %d: %s", c.name, op, resp.StatusCode(), resp.String())
}
