package pl031

import (
	"errors"
	"fmt"
	"time"

	"github.com/hvfw/firmware/mem"
)

// Calendar years representable by the 8-bit year offset of ReadDate.
const (
	BaseYear = 2000
	MaxYear  = BaseYear + 255
)

var (
	ErrYearRange   = errors.New("year out of range")
	ErrSplitWindow = errors.New("register window not contiguous in new mapping")
)

// DecodeError is returned when the clock holds a timestamp that can't be
// reported as a date. Callers should treat the clock as unavailable.
type DecodeError struct {
	Timestamp uint32
	Year      int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pl031: timestamp %d: year %d not in [%d, %d]",
		e.Timestamp, e.Year, BaseYear, MaxYear)
}

func (e *DecodeError) Unwrap() error { return ErrYearRange }

// Decode converts seconds since the Unix epoch to a UTC date. Years before
// BaseYear or after MaxYear are rejected rather than wrapped into the year
// offset. A 32-bit timestamp can't go beyond 2106, so in practice only
// clocks set before 2000 fail.
func Decode(ts uint32) (time.Time, error) {
	t := time.Unix(int64(ts), 0).UTC()
	if y := t.Year(); y < BaseYear || y > MaxYear {
		return time.Time{}, &DecodeError{Timestamp: ts, Year: y}
	}
	return t, nil
}

// RelocationError is returned when the register window couldn't be resolved
// through a new memory map.
type RelocationError struct {
	Base mem.Addr
	Err  error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("pl031: relocate %#x: %v", uint64(e.Base), e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }
