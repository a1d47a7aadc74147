package ulid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"
)

// Strategy selects how a Generator reacts to the time source moving
// backward.
type Strategy int

const (
	// Monotonic pins to the last seen millisecond and increments the random
	// payload, so output stays strictly increasing no matter what the clock
	// does.
	Monotonic Strategy = iota
	// Strict surfaces a ClockBackwardError instead of reusing a past
	// timestamp.
	Strict
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Monotonic:
		return "monotonic"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "monotonic", "":
		return Monotonic, nil
	case "strict":
		return Strict, nil
	default:
		return Monotonic, fmt.Errorf("ulid: unknown strategy %q (use monotonic|strict)", s)
	}
}

// DefaultMaxWait bounds how long NextBatch polls for the clock to advance
// after a mid-batch random-counter overflow.
const DefaultMaxWait = 250 * time.Millisecond

// overflowPoll is the sleep increment while waiting out an overflow window.
const overflowPoll = time.Millisecond / 8

// Generator mints strictly increasing ULIDs. All state lives behind one
// mutex; the full read-compare-mutate-emit sequence is a single critical
// section. Instances do not share state; every guarantee is per instance.
type Generator struct {
	mu       sync.Mutex
	clock    Clock
	entropy  io.Reader
	strategy Strategy
	maxWait  time.Duration

	lastMs int64
	randHi uint16
	randLo uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source. Default is SystemClock().
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithStrategy sets the clock-drift strategy. Default is Monotonic.
func WithStrategy(s Strategy) Option {
	return func(g *Generator) { g.strategy = s }
}

// WithEntropy sets the randomness source. Default is crypto/rand.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithMaxWait bounds the batch-path overflow wait. Default is
// DefaultMaxWait.
func WithMaxWait(d time.Duration) Option {
	return func(g *Generator) { g.maxWait = d }
}

// NewGenerator creates a Generator with zeroed state, so the first call
// always takes the fresh-timestamp path.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:   SystemClock(),
		entropy: rand.Reader,
		maxWait: DefaultMaxWait,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next mints one identifier. Under Monotonic it only fails on entropy
// exhaustion of the 80-bit counter (RandomOverflowError) or an unreadable
// entropy source; under Strict it additionally fails with
// ClockBackwardError when the clock regresses, leaving state untouched.
func (g *Generator) Next() (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextLocked(g.clock.Now())
}

// nextLocked runs one step of the state machine. Callers hold g.mu.
func (g *Generator) nextLocked(now int64) (ULID, error) {
	switch {
	case now > g.lastMs:
		hi, lo, err := g.draw()
		if err != nil {
			return ULID{}, err
		}
		g.lastMs, g.randHi, g.randLo = now, hi, lo
	case now == g.lastMs:
		if err := g.incrementLocked(); err != nil {
			return ULID{}, err
		}
	default:
		if g.strategy == Strict {
			return ULID{}, &ClockBackwardError{Current: now, Last: g.lastMs}
		}
		// Clock went backward: keep minting inside the last window.
		if err := g.incrementLocked(); err != nil {
			return ULID{}, err
		}
	}
	return FromParts(g.lastMs, g.randHi, g.randLo), nil
}

// incrementLocked advances the 80-bit payload by one, carrying from the low
// word into the high. State is untouched when the counter is saturated, so
// a retry after the clock advances succeeds.
func (g *Generator) incrementLocked() error {
	if g.randLo == math.MaxUint64 && g.randHi == math.MaxUint16 {
		return &RandomOverflowError{Timestamp: g.lastMs}
	}
	g.randLo++
	if g.randLo == 0 {
		g.randHi++
	}
	return nil
}

// draw reads a fresh 80-bit payload from the entropy source.
func (g *Generator) draw() (uint16, uint64, error) {
	var b [10]byte
	if _, err := io.ReadFull(g.entropy, b[:]); err != nil {
		return 0, 0, fmt.Errorf("ulid: read entropy: %w", err)
	}
	return binary.BigEndian.Uint16(b[0:2]), binary.BigEndian.Uint64(b[2:10]), nil
}

// NextBatch mints n identifiers under a single lock acquisition. The
// timestamp is sampled once; the first identifier seeds fresh randomness if
// the window is new, and the rest reuse the increment path, so the batch is
// strictly increasing and as cheap as one synchronized call.
//
// If the 80-bit counter overflows mid-batch the lock is released and the
// clock is polled, bounded by the configured max wait; on timeout the
// logical timestamp advances by one millisecond and the batch continues.
// A batch therefore never fails on overflow, only on an unreadable entropy
// source or, under Strict, a backward clock.
func (g *Generator) NextBatch(n int) ([]ULID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ulid: batch size must be positive, got %d", n)
	}
	out := make([]ULID, 0, n)

	g.mu.Lock()
	now := g.clock.Now()
	for len(out) < n {
		u, err := g.nextLocked(now)
		if err == nil {
			out = append(out, u)
			continue
		}
		var overflow *RandomOverflowError
		if !errors.As(err, &overflow) {
			g.mu.Unlock()
			return nil, err
		}
		// Window exhausted. Wait without holding the lock so single calls
		// are not blocked behind the batch.
		g.mu.Unlock()
		now = g.waitBeyond(overflow.Timestamp)
		g.mu.Lock()
	}
	g.mu.Unlock()
	return out, nil
}

// waitBeyond polls the clock until it passes last, sleeping in short
// increments. If maxWait elapses first it synthesizes last+1, trading a
// one-millisecond timestamp deviation for the batch never failing.
func (g *Generator) waitBeyond(last int64) int64 {
	deadline := time.Now().Add(g.maxWait)
	for {
		if now := g.clock.Now(); now > last {
			return now
		}
		if !time.Now().Before(deadline) {
			return last + 1
		}
		time.Sleep(overflowPoll)
	}
}
