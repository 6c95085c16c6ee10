package domain

import (
	"context"
	"time"

	"github.com/Pesteves2002/tomase-website/internal/deferred"
)

// DefaultLoadDelay simulates the network latency of the demo loader.
const DefaultLoadDelay = time.Second

// LoadMultiplier is applied by the fake server load.
const LoadMultiplier = 10

// Load is the fake server computation: value*10. It never fails.
func Load(value int) int {
	return value * LoadMultiplier
}

// ScheduleLoad starts a deferred Load(value) that resolves after delay.
// Cancelling ctx (or the returned task) abandons the result.
func ScheduleLoad(ctx context.Context, value int, delay time.Duration) *deferred.Task[int] {
	return deferred.After(ctx, delay, func(context.Context) (int, error) {
		return Load(value), nil
	})
}
