package domain

import (
	"math"
	"sync"
)

// DefaultInitialCount is the value a fresh demo counter starts from.
const DefaultInitialCount = 10

// MaxCount is the ceiling of the counter. The count travels through the page as
// text and is read back with ParseNumber, so it stays inside the int32 range.
const MaxCount = math.MaxInt32

// Counter is the demo state cell owned by one home view.
//
// It stores a single integer. Doubled and IsOdd are computed from the current
// value on every call and are never stored.
type Counter struct {
	mu        sync.Mutex
	value     int
	observers []func(int)
}

// NewCounter creates a counter holding initial.
func NewCounter(initial int) *Counter {
	return &Counter{value: initial}
}

// Value returns the current count.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment adds one to the count and notifies observers with the new value.
// At MaxCount the count saturates: it stays put and observers are not called.
// Observers run after the lock is released, in registration order.
func (c *Counter) Increment() int {
	c.mu.Lock()
	if c.value >= MaxCount {
		v := c.value
		c.mu.Unlock()
		return v
	}
	c.value++
	v := c.value
	observers := make([]func(int), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
	return v
}

// OnChange registers fn to be called with the new value after each increment.
func (c *Counter) OnChange(fn func(int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Doubled returns twice the current count.
func (c *Counter) Doubled() int64 {
	return Doubled(c.Value())
}

// IsOdd reports the parity of the current count.
func (c *Counter) IsOdd() bool {
	return IsOdd(c.Value())
}

// Doubled is the pure projection count*2, computed in 64 bits so it is exact
// for every count in the int32 range.
func Doubled(count int) int64 {
	return int64(count) * 2
}

// IsOdd reports whether count is odd. Negative values use mathematical parity
// (-3 is odd); Go's % keeps the dividend's sign, so count%2 == 1 would miss them.
func IsOdd(count int) bool {
	return count&1 == 1
}
