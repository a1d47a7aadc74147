package ulid

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidLength reports a string that is not 26 characters or a byte
	// buffer that is not 16 bytes.
	ErrInvalidLength = errors.New("ulid: invalid length")

	// ErrInvalidCharacter reports a symbol outside the Crockford alphabet,
	// or a first symbol above '7' (the leading character carries only 3
	// significant bits). Decode errors wrap this sentinel with position
	// detail.
	ErrInvalidCharacter = errors.New("ulid: invalid character")
)

// ClockBackwardError is returned by a Strict-strategy generator when the
// time source reports a timestamp earlier than one it has already used.
// The generator's state is left untouched.
type ClockBackwardError struct {
	Current int64 // observed timestamp, ms
	Last    int64 // last timestamp used to mint, ms
}

// Delta returns how far the clock moved backward.
func (e *ClockBackwardError) Delta() time.Duration {
	return time.Duration(e.Last-e.Current) * time.Millisecond
}

func (e *ClockBackwardError) Error() string {
	return fmt.Sprintf("ulid: clock moved backward: current=%dms last=%dms delta=%s",
		e.Current, e.Last, e.Delta())
}

// RandomOverflowError is returned when the 80-bit random counter exhausts
// all values within a single millisecond. Callers may retry once the clock
// advances.
type RandomOverflowError struct {
	Timestamp int64 // millisecond window in which the counter overflowed
}

func (e *RandomOverflowError) Error() string {
	return fmt.Sprintf("ulid: random counter overflow within %dms window", e.Timestamp)
}
