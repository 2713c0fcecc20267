package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/time/rate"
)

// RateLimitedExecutor delays requests so that the wrapped executor never
// exceeds the configured rate.
type RateLimitedExecutor struct {
	inner   Executor
	limiter *rate.Limiter
}

// NewRateLimitedExecutor wraps inner with a token bucket of rps tokens per
// second. rps <= 0 disables limiting and a burst below 1 is raised to 1.
func NewRateLimitedExecutor(inner Executor, rps float64, burst int) *RateLimitedExecutor {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedExecutor{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Execute waits for a token, honouring ctx, then delegates.
func (e *RateLimitedExecutor) Execute(ctx context.Context, rawURL string, params url.Values, out any) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return e.inner.Execute(ctx, rawURL, params, out)
}
