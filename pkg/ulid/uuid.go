package ulid

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// UUID reinterprets the identifier as a generic 128-bit UUID container.
// The 16 bytes are carried over verbatim; no version or variant bits are
// set, so the result round-trips exactly through FromUUID.
func (u ULID) UUID() uuid.UUID {
	var b uuid.UUID
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

// FromUUID reinterprets a UUID's 16 bytes as a ULID. No transformation is
// applied; a UUID that was not produced from a ULID yields an identifier
// with an arbitrary timestamp.
func FromUUID(id uuid.UUID) ULID {
	return ULID{
		hi: binary.BigEndian.Uint64(id[0:8]),
		lo: binary.BigEndian.Uint64(id[8:16]),
	}
}
