package resilience

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrCircuitOpen is returned when the circuit breaker refuses the call.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrMaxRetriesExceeded is returned when every retry attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// ClientConfig holds configuration for the resilient HTTP client that fronts
// a single upstream API.
type ClientConfig struct {
	// Name identifies the upstream in breaker state and health output.
	Name string

	// Timeout is the per-request HTTP timeout. Default: 10s.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts after the first try.
	// Default: 3. Set DisableRetries to turn retries off; a zero
	// MaxRetries means unset.
	MaxRetries uint64

	// DisableRetries makes every call a single attempt.
	DisableRetries bool

	// InitialInterval is the first retry backoff delay. Default: 100ms.
	InitialInterval time.Duration

	// MaxInterval caps the retry backoff delay. Default: 5s.
	MaxInterval time.Duration

	// Throttle bounds request rate and concurrency toward the upstream.
	// Zero values disable throttling.
	Throttle ThrottleConfig

	// CircuitBreaker overrides the default breaker settings when non-nil.
	CircuitBreaker *CircuitBreakerConfig

	// Registry, when non-nil, receives the client under Name so its health
	// shows up in status output.
	Registry *Registry
}

// DefaultClientConfig returns sensible defaults for an upstream client.
func DefaultClientConfig(name string) ClientConfig {
	cbConfig := DefaultCircuitBreakerConfig(name)
	return ClientConfig{
		Name:            name,
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		CircuitBreaker:  &cbConfig,
	}
}

// Client wraps an http.Client with a throttle, a circuit breaker and
// exponential-backoff retries. One Client serves one upstream so that the
// breaker and the rate budget are scoped correctly.
type Client struct {
	httpClient     *http.Client
	circuitBreaker *gobreaker.CircuitBreaker[*http.Response]
	throttle       *Throttle
	config         ClientConfig
}

// NewClient creates a resilient client for one upstream.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 100 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 5 * time.Second
	}

	cbCfg := DefaultCircuitBreakerConfig(cfg.Name)
	if cfg.CircuitBreaker != nil {
		cbCfg = *cfg.CircuitBreaker
	}

	var throttle *Throttle
	if cfg.Throttle.RequestsPerMinute > 0 || cfg.Throttle.MaxConcurrent > 0 {
		throttle = NewThrottle(cfg.Throttle)
	}

	c := &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		circuitBreaker: NewCircuitBreaker[*http.Response](cbCfg), //nolint:bodyclose // type param, not response
		throttle:       throttle,
		config:         cfg,
	}
	if cfg.Registry != nil {
		cfg.Registry.Register(cfg.Name, c)
	}
	return c
}

// Name returns the upstream identifier this client serves.
func (c *Client) Name() string {
	return c.config.Name
}

// Do executes an HTTP request through the throttle, circuit breaker and
// retry policy. Transient failures (network errors, 5xx) are retried with
// exponential backoff; an open breaker fails fast with ErrCircuitOpen.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.DoWithContext(req.Context(), req)
}

// DoWithContext executes an HTTP request with the given context.
func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.InitialInterval
	bo.MaxInterval = c.config.MaxInterval
	bo.MaxElapsedTime = 0 // attempts are bounded by WithMaxRetries

	maxRetries := c.config.MaxRetries
	if c.config.DisableRetries {
		maxRetries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)

	var lastResp *http.Response

	operation := func() error {
		// Every attempt pays the rate budget, not just the first.
		if err := c.throttle.Acquire(ctx); err != nil {
			return backoff.Permanent(err)
		}

		// 5xx responses come back as errors so the breaker sees them.
		resp, err := c.circuitBreaker.Execute(func() (*http.Response, error) { //nolint:bodyclose // caller closes
			r, reqErr := c.httpClient.Do(req.Clone(ctx))
			if reqErr != nil {
				return nil, reqErr
			}
			if r.StatusCode >= 500 {
				return r, &ServerError{StatusCode: r.StatusCode}
			}
			return r, nil
		})

		if err != nil {
			c.throttle.Release(false)
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrCircuitOpen)
			}
			if resp != nil {
				lastResp = resp
			}
			return err
		}

		c.throttle.Release(true)
		lastResp = resp
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		// A 5xx that exhausted retries still carries a usable response.
		if lastResp != nil {
			return lastResp, nil
		}
		return nil, err
	}

	return lastResp, nil
}

// ServerError represents an HTTP 5xx upstream response.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}

// CircuitBreakerState returns the current breaker state.
func (c *Client) CircuitBreakerState() gobreaker.State {
	return c.circuitBreaker.State()
}

// CircuitBreakerCounts returns the breaker's request counts.
func (c *Client) CircuitBreakerCounts() gobreaker.Counts {
	return c.circuitBreaker.Counts()
}

// ThrottleStats returns throttle counters for the upstream. Zero-valued if
// throttling is disabled.
func (c *Client) ThrottleStats() ThrottleStats {
	return c.throttle.Stats()
}
