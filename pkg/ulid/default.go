package ulid

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// defaultGenerator is the process-wide generator behind Make. It starts as
// a plain monotonic generator over the system clock.
var defaultGenerator = NewGenerator()

// Configure replaces the process-wide default generator used by Make.
// Call it once during application wiring, before identifiers are minted
// concurrently: the swap itself is not synchronized against in-flight
// Make calls.
func Configure(opts ...Option) {
	defaultGenerator = NewGenerator(opts...)
}

// DefaultGenerator returns the current process-wide generator.
func DefaultGenerator() *Generator { return defaultGenerator }

// Make returns a new identifier from the default generator. It never
// fails: if the generator reports an error (a Strict-configured default
// observing a backward clock, counter overflow, or a broken entropy
// source), Make falls back to a fresh system-clock timestamp plus raw
// randomness, bypassing monotonicity for that single call.
func Make() ULID {
	if u, err := defaultGenerator.Next(); err == nil {
		return u
	}
	var b [10]byte
	_, _ = rand.Read(b[:])
	return FromParts(time.Now().UnixMilli(),
		binary.BigEndian.Uint16(b[0:2]), binary.BigEndian.Uint64(b[2:10]))
}
