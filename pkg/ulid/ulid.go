package ulid

import (
	"encoding/binary"
	"time"
)

// ULID is a 128-bit, lexicographically sortable identifier held as two
// 64-bit words. hi packs [48-bit ms timestamp | 16 high random bits];
// lo holds the low 64 random bits. The struct is comparable; == is value
// equality.
type ULID struct {
	hi, lo uint64
}

// FromParts packs a millisecond timestamp and an 80-bit random payload into
// a ULID. Timestamps beyond 2^48-1 spill into the high bits and are not
// rejected; callers are responsible for staying in range.
func FromParts(ms int64, randHi uint16, randLo uint64) ULID {
	return ULID{hi: uint64(ms)<<16 | uint64(randHi), lo: randLo}
}

// FromBytes interprets b as the big-endian 16-byte form. It fails unless
// exactly 16 bytes are supplied.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != 16 {
		return ULID{}, ErrInvalidLength
	}
	return ULID{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// Parse decodes the 26-character canonical form. Input is case-insensitive
// and accepts the Crockford substitutions (i/l -> 1, o -> 0).
func Parse(s string) (ULID, error) {
	return decode(s)
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the big-endian 16-byte representation.
func (u ULID) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

// String returns the 26-character canonical (uppercase) form.
func (u ULID) String() string {
	return encode(u)
}

// AppendText appends the canonical form to dst and returns the extended
// slice.
func (u ULID) AppendText(dst []byte) []byte {
	var buf [EncodedSize]byte
	encodeTo(&buf, u)
	return append(dst, buf[:]...)
}

// Timestamp returns the embedded timestamp in milliseconds since the Unix
// epoch.
func (u ULID) Timestamp() int64 {
	return int64(u.hi >> 16)
}

// Time returns the embedded timestamp as a time.Time.
func (u ULID) Time() time.Time {
	return time.UnixMilli(u.Timestamp())
}

// RandHi returns the high 16 bits of the random payload.
func (u ULID) RandHi() uint16 { return uint16(u.hi) }

// RandLo returns the low 64 bits of the random payload.
func (u ULID) RandLo() uint64 { return u.lo }

// IsZero reports whether u is the all-zero identifier.
func (u ULID) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// Compare returns -1, 0, or 1. The high word decides almost always since it
// leads with the timestamp; the low word breaks ties.
func (u ULID) Compare(other ULID) int {
	switch {
	case u.hi < other.hi:
		return -1
	case u.hi > other.hi:
		return 1
	case u.lo < other.lo:
		return -1
	case u.lo > other.lo:
		return 1
	}
	return 0
}

// Hash folds both words into a 64-bit hash suitable for hash tables. Equal
// values hash equal.
func (u ULID) Hash() uint64 {
	return mix64(u.hi ^ mix64(u.lo))
}

// mix64 is the splitmix64 finalizer; a cheap full-avalanche mixer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
