package ulid

import (
	"testing"
	"time"
)

func TestSystemClockPlausible(t *testing.T) {
	now := SystemClock().Now()
	wall := time.Now().UnixMilli()
	if now < wall-1000 || now > wall+1000 {
		t.Fatalf("system clock far from wall time: %d vs %d", now, wall)
	}
}

func TestMonotonicClockNonDecreasing(t *testing.T) {
	c := NewMonotonicClock()
	prev := c.Now()
	for i := 0; i < 1000; i++ {
		now := c.Now()
		if now < prev {
			t.Fatalf("monotonic clock went backward: %d then %d", prev, now)
		}
		prev = now
	}
}

func TestMonotonicClockAdvances(t *testing.T) {
	c := NewMonotonicClock()
	start := c.Now()
	time.Sleep(5 * time.Millisecond)
	if c.Now() <= start {
		t.Fatalf("monotonic clock did not advance")
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(42)
	if c.Now() != 42 {
		t.Fatalf("Now = %d", c.Now())
	}
	c.Set(100)
	if c.Now() != 100 {
		t.Fatalf("after Set: %d", c.Now())
	}
	c.Advance(2500 * time.Microsecond)
	if c.Now() != 102 {
		t.Fatalf("after Advance: %d, want 102", c.Now())
	}
}

func TestClockFunc(t *testing.T) {
	calls := 0
	c := ClockFunc(func() int64 { calls++; return int64(calls) })
	if c.Now() != 1 || c.Now() != 2 {
		t.Fatalf("ClockFunc did not delegate")
	}
}
