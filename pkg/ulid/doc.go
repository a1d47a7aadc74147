// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers: 128-bit values built from a 48-bit millisecond timestamp and
// 80 bits of randomness, rendered as 26 Crockford Base32 characters whose
// lexicographic order matches chronological order.
//
// # Format
//
// The value is held as two 64-bit words. The high word packs the timestamp
// in its upper 48 bits and the top 16 random bits below it; the low word is
// the remaining 64 random bits. Byte serialization is big-endian, so
// byte-wise comparison, numeric comparison, and chronological order all
// agree:
//
//	bytes 0-5   48-bit ms timestamp
//	bytes 6-7   high 16 bits of randomness
//	bytes 8-15  low 64 bits of randomness
//
// # Monotonicity
//
// A Generator guarantees that, per instance, every minted identifier
// compares greater than the one before it:
//   - If the clock repeats a millisecond, the 80-bit random payload is
//     incremented instead of redrawn.
//   - If the clock moves backward, the Monotonic strategy pins to the last
//     seen millisecond and increments; the Strict strategy returns a
//     ClockBackwardError without touching state.
//   - If the 80-bit counter exhausts within one millisecond, Next returns a
//     RandomOverflowError; NextBatch instead waits (bounded) for the clock
//     to advance and never fails on overflow.
//
// Usage
//
//	g := ulid.NewGenerator()
//	id, err := g.Next()
//	s := id.String()            // 26-char canonical form
//	back, err := ulid.Parse(s)  // exact inverse
//
// The zero-argument convenience ulid.Make() uses a process-wide default
// generator and never fails.
package ulid
