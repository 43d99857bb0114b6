// Package pl031 implements a read-only driver for the ARM PrimeCell PL031 real
// time clock.
//
// Only the data register is used. It holds the seconds since the Unix epoch,
// which are decoded to a UTC calendar date and time of day.
//
// The driver survives a remap of the firmware's address space: once the OS
// loader has installed new page tables, [Device.Relocate] moves the register
// window to its new virtual address.
package pl031

import (
	"time"

	"github.com/hvfw/firmware/efi"
	"github.com/hvfw/firmware/mem"
)

// Register offsets
const (
	RTCDR = 0x000 // Data register, read-only
)

// RegionSize is the size of the PL031 register window.
const RegionSize = 0x1000

// Translator resolves an address of the old mapping through a new memory
// map.
type Translator interface {
	ConvertPointer(descs []efi.MemoryDescriptor, addr uint64) (uint64, error)
}

// Device is a PL031 mapped at a relocatable base.
//
// Device isn't safe for concurrent use.
type Device struct {
	region mem.Region
}

// New returns a Device with its register window at base.
func New(base mem.Addr) *Device {
	return &Device{region: mem.New(base, RegionSize)}
}

// Region returns the current base and size of the register window.
func (d *Device) Region() (mem.Addr, uint64) {
	return d.region.Range()
}

// ReadTimestamp returns the raw data register. Every value is a valid
// timestamp.
func (d *Device) ReadTimestamp() uint32 {
	return d.region.ReadU32(RTCDR)
}

// Now reads the clock and returns the current time in UTC. It fails like
// [Decode] for dates the year offset of ReadDate can't express.
func (d *Device) Now() (time.Time, error) {
	return Decode(d.ReadTimestamp())
}

// ReadDate returns the current UTC date with the year as offset from 2000.
func (d *Device) ReadDate() (year, month, day uint8, err error) {
	t, err := d.Now()
	if err != nil {
		return
	}
	return uint8(t.Year() - BaseYear), uint8(t.Month()), uint8(t.Day()), nil
}

// ReadTime returns the current UTC time of day. Every timestamp has a time of
// day, so err is always nil.
func (d *Device) ReadTime() (hour, minute, second uint8, err error) {
	t := time.Unix(int64(d.ReadTimestamp()), 0).UTC()
	return uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()), nil
}

// ApplyRelocation moves the register window to base. Calling it without a
// preceding remap, or skipping it after one, leaves the device reading
// through a stale mapping.
func (d *Device) ApplyRelocation(base mem.Addr) {
	d.region.SetBase(base)
}

// Relocate resolves the current base through descs and installs the result.
// The size of the window is kept, so its last register must land inside the
// moved window, too. Otherwise, or if tr fails, the device is left untouched
// and a *RelocationError is returned.
func (d *Device) Relocate(descs []efi.MemoryDescriptor, tr Translator) error {
	base, size := d.region.Range()
	newBase, err := tr.ConvertPointer(descs, uint64(base))
	if err != nil {
		return &RelocationError{Base: base, Err: err}
	}
	last, err := tr.ConvertPointer(descs, uint64(base)+size-4)
	if err != nil {
		return &RelocationError{Base: base, Err: err}
	}

	moved := mem.New(mem.Addr(newBase), size)
	if !moved.Contains(mem.Addr(last)) || last-newBase != size-4 {
		return &RelocationError{Base: base, Err: ErrSplitWindow}
	}
	d.region = moved
	return nil
}
