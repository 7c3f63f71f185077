package apiclient

import (
	"context"

	"golang.org/x/time/rate"
)

type limiter interface {
	Wait(ctx context.Context) error
}

// newLimiter paces outgoing requests. Non-positive values fall back to a
// conservative default rather than disabling pacing.
func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
