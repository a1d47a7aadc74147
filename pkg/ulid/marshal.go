package ulid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText renders the canonical 26-character form. Through
// encoding.TextMarshaler this also covers JSON, YAML, and map keys.
func (u ULID) MarshalText() ([]byte, error) {
	return u.AppendText(make([]byte, 0, EncodedSize)), nil
}

// UnmarshalText parses the canonical form. A malformed string leaves the
// receiver untouched and returns the decode error.
func (u *ULID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary renders the big-endian 16-byte form.
func (u ULID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary parses the 16-byte form.
func (u *ULID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical text form.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts the 26-character text form (as
// string or []byte) and the raw 16-byte form.
func (u *ULID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 16 {
			return u.UnmarshalBinary(v)
		}
		return u.UnmarshalText(v)
	default:
		return fmt.Errorf("ulid: cannot scan %T", src)
	}
}
