package resilience

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ThrottleConfig bounds how hard a single upstream may be driven.
type ThrottleConfig struct {
	// RequestsPerMinute is the sustained request budget. Zero disables
	// rate limiting.
	RequestsPerMinute int

	// MaxConcurrent caps requests in flight at once. Zero disables the cap.
	MaxConcurrent int64
}

// ThrottleStats is a point-in-time snapshot of throttle activity.
type ThrottleStats struct {
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
	InFlight  int64 `json:"inFlight"`
	Waiting   int64 `json:"waiting"`
}

// Throttle serialises access to an upstream behind a token-bucket rate
// limiter and a concurrency semaphore. All methods are safe for concurrent
// use; Stats never blocks.
type Throttle struct {
	limiter *rate.Limiter
	sem     *semaphore.Weighted

	completed atomic.Int64
	failed    atomic.Int64
	inFlight  atomic.Int64
	waiting   atomic.Int64
}

// NewThrottle builds a throttle from cfg. Disabled dimensions are left nil
// and acquire becomes a no-op for them.
func NewThrottle(cfg ThrottleConfig) *Throttle {
	t := &Throttle{}
	if cfg.RequestsPerMinute > 0 {
		// Burst of one keeps dispatch evenly spaced across the minute.
		t.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}
	if cfg.MaxConcurrent > 0 {
		t.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return t
}

// Acquire blocks until a slot and a rate token are available, or the context
// is cancelled. Every successful Acquire must be paired with a Release.
func (t *Throttle) Acquire(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.waiting.Add(1)
	defer t.waiting.Add(-1)

	if t.sem != nil {
		if err := t.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			if t.sem != nil {
				t.sem.Release(1)
			}
			return err
		}
	}
	t.inFlight.Add(1)
	return nil
}

// Release returns the slot taken by Acquire and records the outcome.
func (t *Throttle) Release(success bool) {
	if t == nil {
		return
	}
	t.inFlight.Add(-1)
	if success {
		t.completed.Add(1)
	} else {
		t.failed.Add(1)
	}
	if t.sem != nil {
		t.sem.Release(1)
	}
}

// Stats returns current counters without blocking.
func (t *Throttle) Stats() ThrottleStats {
	if t == nil {
		return ThrottleStats{}
	}
	return ThrottleStats{
		Completed: t.completed.Load(),
		Failed:    t.failed.Load(),
		InFlight:  t.inFlight.Load(),
		Waiting:   t.waiting.Load(),
	}
}
