package observ

import (
	"sync/atomic"

	"fortio.org/safecast"
)

// CounterSet is a fixed set of monotonic counters indexed by a small enum.
// All methods are safe for concurrent use.
type CounterSet[K ~uint8] struct {
	vals []atomic.Uint64
}

// NewCounterSet allocates n counters, addressed by K(0) .. K(n-1).
func NewCounterSet[K ~uint8](n int) *CounterSet[K] {
	return &CounterSet[K]{vals: make([]atomic.Uint64, n)}
}

// Inc adds one to counter k. Out-of-range keys are ignored.
func (c *CounterSet[K]) Inc(k K) {
	if int(k) < len(c.vals) {
		c.vals[k].Add(1)
	}
}

// Get returns the current value of counter k.
func (c *CounterSet[K]) Get(k K) uint64 {
	if int(k) >= len(c.vals) {
		return 0
	}
	return c.vals[k].Load()
}

// Len reports the number of counters.
func (c *CounterSet[K]) Len() int { return len(c.vals) }

// Total sums all counters.
func (c *CounterSet[K]) Total() uint64 {
	var sum uint64
	for i := range c.vals {
		sum += c.vals[i].Load()
	}
	return sum
}

// Each calls fn for every non-zero counter in key order.
func (c *CounterSet[K]) Each(fn func(k K, v uint64)) {
	for i := range c.vals {
		v := c.vals[i].Load()
		if v == 0 {
			continue
		}
		k, err := safecast.Conv[uint8](i)
		if err != nil {
			return
		}
		fn(K(k), v)
	}
}
