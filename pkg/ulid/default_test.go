package ulid

import (
	"sync/atomic"
	"testing"
)

func TestConfigureReplacesGenerator(t *testing.T) {
	defer Configure()

	Configure(WithClock(NewFixedClock(5000)))
	u := Make()
	if u.Timestamp() != 5000 {
		t.Fatalf("timestamp = %d, want 5000", u.Timestamp())
	}
	if DefaultGenerator() == nil {
		t.Fatalf("default generator missing")
	}
}

func TestMakeNeverFails(t *testing.T) {
	defer Configure()

	// A strict generator over a clock that runs backward errors on every
	// call after the first; Make must still return a usable identifier by
	// falling back to a direct draw.
	var ticks atomic.Int64
	ticks.Store(1_000_000)
	Configure(
		WithStrategy(Strict),
		WithClock(ClockFunc(func() int64 { return ticks.Add(-1) })),
	)

	first := Make()
	second := Make()
	if first.IsZero() || second.IsZero() {
		t.Fatalf("Make returned zero value")
	}
	if second.Timestamp() <= 0 {
		t.Fatalf("fallback timestamp implausible: %d", second.Timestamp())
	}
}

func TestMakeSequentialIncreases(t *testing.T) {
	defer Configure()
	Configure(WithClock(NewFixedClock(7000)))

	prev := Make()
	for i := 0; i < 100; i++ {
		cur := Make()
		if prev.Compare(cur) >= 0 {
			t.Fatalf("not increasing at %d", i)
		}
		prev = cur
	}
}
