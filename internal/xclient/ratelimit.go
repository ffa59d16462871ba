package xclient

import (
	"time"

	"golang.org/x/time/rate"
)

// newPageLimiter paces page requests at one per delay. Burst of one lets
// the first request of a run go out immediately; every later request is
// spaced by the politeness delay.
func newPageLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
