package efi

import "time"

// Time mirrors EFI_TIME.
type Time struct {
	Year       uint16 // 1900 - 9999
	Month      uint8  // 1 - 12
	Day        uint8  // 1 - 31
	Hour       uint8  // 0 - 23
	Minute     uint8  // 0 - 59
	Second     uint8  // 0 - 59
	_          uint8
	Nanosecond uint32
	TimeZone   int16 // minutes from UTC or UnspecifiedTimezone
	Daylight   uint8
	_          uint8
}

// UnspecifiedTimezone marks a Time as local time without zone information.
const UnspecifiedTimezone int16 = 0x07ff

// NewTime converts t to UTC and returns it as an EFI Time. The zone is left
// unspecified, matching clocks that only know epoch seconds.
func NewTime(t time.Time) Time {
	t = t.UTC()
	return Time{
		Year:       uint16(t.Year()),
		Month:      uint8(t.Month()),
		Day:        uint8(t.Day()),
		Hour:       uint8(t.Hour()),
		Minute:     uint8(t.Minute()),
		Second:     uint8(t.Second()),
		Nanosecond: uint32(t.Nanosecond()),
		TimeZone:   UnspecifiedTimezone,
	}
}
