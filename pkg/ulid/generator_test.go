package ulid

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

// constReader yields an endless stream of a single byte value.
type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// failReader always errors.
type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestMonotonicSameMillisecond(t *testing.T) {
	g := NewGenerator(WithClock(NewFixedClock(1000)))
	prev, err := g.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 0; i < 1000; i++ {
		cur, err := g.Next()
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if prev.Compare(cur) >= 0 {
			t.Fatalf("not increasing at %d: %v then %v", i, prev, cur)
		}
		if cur.Timestamp() != 1000 {
			t.Fatalf("timestamp drifted: %d", cur.Timestamp())
		}
		prev = cur
	}
}

func TestClockBackwardMonotonic(t *testing.T) {
	clock := NewFixedClock(1000)
	g := NewGenerator(WithClock(clock))
	a, err := g.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	clock.Set(900)
	b, err := g.Next()
	if err != nil {
		t.Fatalf("next after regression: %v", err)
	}
	if a.Compare(b) >= 0 {
		t.Fatalf("expected b > a despite clock regression")
	}
	if b.Timestamp() != 1000 {
		t.Fatalf("expected pinned timestamp 1000, got %d", b.Timestamp())
	}
}

func TestClockBackwardStrict(t *testing.T) {
	clock := NewFixedClock(1000)
	g := NewGenerator(WithClock(clock), WithStrategy(Strict))
	if _, err := g.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	clock.Set(900)
	_, err := g.Next()
	var cbe *ClockBackwardError
	if !errors.As(err, &cbe) {
		t.Fatalf("got %v, want ClockBackwardError", err)
	}
	if cbe.Current != 900 || cbe.Last != 1000 {
		t.Fatalf("error payload: current=%d last=%d", cbe.Current, cbe.Last)
	}
	if cbe.Delta() != 100*time.Millisecond {
		t.Fatalf("delta = %s, want 100ms", cbe.Delta())
	}
	if g.lastMs != 1000 {
		t.Fatalf("state mutated on strict failure: lastMs=%d", g.lastMs)
	}

	// An advancing clock recovers normally.
	clock.Set(1001)
	u, err := g.Next()
	if err != nil {
		t.Fatalf("next after recovery: %v", err)
	}
	if u.Timestamp() != 1001 {
		t.Fatalf("timestamp = %d, want 1001", u.Timestamp())
	}
}

func TestRandomOverflowSingleCall(t *testing.T) {
	clock := NewFixedClock(1000)
	g := NewGenerator(WithClock(clock))
	g.lastMs, g.randHi, g.randLo = 1000, math.MaxUint16, math.MaxUint64

	_, err := g.Next()
	var roe *RandomOverflowError
	if !errors.As(err, &roe) {
		t.Fatalf("got %v, want RandomOverflowError", err)
	}
	if roe.Timestamp != 1000 {
		t.Fatalf("overflow timestamp = %d, want 1000", roe.Timestamp)
	}
	if g.randLo != math.MaxUint64 || g.randHi != math.MaxUint16 {
		t.Fatalf("state mutated on overflow")
	}

	// Retry succeeds once the clock advances.
	clock.Set(1001)
	if _, err := g.Next(); err != nil {
		t.Fatalf("retry after overflow: %v", err)
	}
}

func TestCounterCarry(t *testing.T) {
	g := NewGenerator(WithClock(NewFixedClock(1000)))
	g.lastMs, g.randHi, g.randLo = 1000, 7, math.MaxUint64

	u, err := g.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if u.RandHi() != 8 || u.RandLo() != 0 {
		t.Fatalf("carry failed: hi=%d lo=%d", u.RandHi(), u.RandLo())
	}
}

func TestBatchOrderingAndUniqueness(t *testing.T) {
	g := NewGenerator(WithClock(NewFixedClock(1000)))
	ids, err := g.NextBatch(1000)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(ids) != 1000 {
		t.Fatalf("got %d ids", len(ids))
	}
	seen := make(map[ULID]struct{}, len(ids))
	for i := 1; i < len(ids); i++ {
		if ids[i-1].Compare(ids[i]) >= 0 {
			t.Fatalf("batch not increasing at %d", i)
		}
	}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	if len(seen) != len(ids) {
		t.Fatalf("duplicates in batch")
	}
}

func TestBatchSizeValidation(t *testing.T) {
	g := NewGenerator()
	for _, n := range []int{0, -1} {
		if _, err := g.NextBatch(n); err == nil {
			t.Fatalf("NextBatch(%d): expected error", n)
		}
	}
}

func TestBatchOverflowWaitsForClock(t *testing.T) {
	clock := NewFixedClock(2000)
	g := NewGenerator(WithClock(clock), WithMaxWait(time.Second))
	g.lastMs, g.randHi, g.randLo = 2000, math.MaxUint16, math.MaxUint64-2

	time.AfterFunc(10*time.Millisecond, func() { clock.Set(2001) })

	ids, err := g.NextBatch(5)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("got %d ids", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1].Compare(ids[i]) >= 0 {
			t.Fatalf("batch not increasing at %d", i)
		}
	}
	// The window was exhausted after two increments; the rest must come
	// from the advanced clock.
	if ids[1].Timestamp() != 2000 {
		t.Fatalf("pre-overflow id at %d, want 2000", ids[1].Timestamp())
	}
	if ids[4].Timestamp() != 2001 {
		t.Fatalf("post-overflow id at %d, want 2001", ids[4].Timestamp())
	}
}

func TestBatchOverflowTimeoutSynthesizesTimestamp(t *testing.T) {
	// Clock never advances; the batch must still succeed by stepping the
	// logical timestamp one millisecond forward.
	g := NewGenerator(WithClock(NewFixedClock(3000)), WithMaxWait(5*time.Millisecond))
	g.lastMs, g.randHi, g.randLo = 3000, math.MaxUint16, math.MaxUint64

	ids, err := g.NextBatch(3)
	if err != nil {
		t.Fatalf("batch must not fail on overflow: %v", err)
	}
	for i, id := range ids {
		if id.Timestamp() != 3001 {
			t.Fatalf("id %d at %d, want synthesized 3001", i, id.Timestamp())
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1].Compare(ids[i]) >= 0 {
			t.Fatalf("batch not increasing at %d", i)
		}
	}
}

func TestConcurrentUniqueness(t *testing.T) {
	const workers = 8
	const perWorker = 500

	g := NewGenerator()
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[ULID]struct{}, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ULID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				u, err := g.Next()
				if err != nil {
					t.Errorf("next: %v", err)
					return
				}
				local = append(local, u)
			}
			mu.Lock()
			for _, u := range local {
				seen[u] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("got %d distinct ids, want %d", len(seen), workers*perWorker)
	}
}

func TestEntropyFailureSurfaces(t *testing.T) {
	g := NewGenerator(WithClock(NewFixedClock(1000)), WithEntropy(failReader{}))
	if _, err := g.Next(); err == nil {
		t.Fatalf("expected entropy error")
	}
}

func TestDeterministicEntropy(t *testing.T) {
	g := NewGenerator(WithClock(NewFixedClock(1000)), WithEntropy(constReader(0xAA)))
	u, err := g.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if u.RandHi() != 0xAAAA || u.RandLo() != 0xAAAAAAAAAAAAAAAA {
		t.Fatalf("unexpected payload: hi=%#x lo=%#x", u.RandHi(), u.RandLo())
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"monotonic", Monotonic, true},
		{"strict", Strict, true},
		{"", Monotonic, true},
		{"bogus", Monotonic, false},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseStrategy(%q): err=%v", tt.in, err)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
