package ulid

import (
	"sync"
	"time"
)

// Clock supplies a best-effort current timestamp in milliseconds since the
// Unix epoch. Implementations must be safe for concurrent use; they are not
// required to be monotonic; the Generator imposes ordering itself.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() int64

// Now implements Clock.
func (f ClockFunc) Now() int64 { return f() }

// SystemClock returns a Clock backed by the wall clock. Reads go straight
// to the OS and can repeat or jump backward under NTP adjustment.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() int64 { return time.Now().UnixMilli() }

// NewMonotonicClock returns a Clock that captures a wall/monotonic baseline
// on first read and derives every later timestamp from the monotonic delta.
// The result never moves backward even if the wall clock does, at the cost
// of drifting from wall time after adjustments.
func NewMonotonicClock() Clock { return &monotonicClock{} }

type monotonicClock struct {
	mu     sync.Mutex
	base   time.Time // carries the runtime's monotonic reading
	wallMs int64
}

func (c *monotonicClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.base.IsZero() {
		c.base = time.Now()
		c.wallMs = c.base.UnixMilli()
		return c.wallMs
	}
	return c.wallMs + time.Since(c.base).Milliseconds()
}

// FixedClock is a settable Clock for tests.
type FixedClock struct {
	mu sync.Mutex
	ms int64
}

// NewFixedClock returns a FixedClock pinned at ms.
func NewFixedClock(ms int64) *FixedClock { return &FixedClock{ms: ms} }

// Now implements Clock.
func (c *FixedClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}

// Set pins the clock to ms.
func (c *FixedClock) Set(ms int64) {
	c.mu.Lock()
	c.ms = ms
	c.mu.Unlock()
}

// Advance moves the clock forward by d (truncated to milliseconds).
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.ms += d.Milliseconds()
	c.mu.Unlock()
}
