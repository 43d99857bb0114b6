// Package rtc is the firmware's wall clock. It wires the PL031 of the machine
// to the boot code and to the EFI runtime services.
//
// The clock is process-wide state held in a [borrow.Cell]. Each accessor
// borrows it for the duration of one call. A re-entrant call panics.
//
// After the OS loader has called SetVirtualAddressMap, [FixUp] must be called
// exactly once with the new memory map before the clock is read again.
package rtc

import (
	"github.com/hvfw/firmware/drivers/rtc/borrow"
	"github.com/hvfw/firmware/drivers/rtc/pl031"
	"github.com/hvfw/firmware/efi"
	"github.com/hvfw/firmware/machine"
)

var (
	clock = borrow.NewCell(pl031.New(machine.PL031Base))

	translator pl031.Translator = efi.ConverterFunc(efi.ConvertPointer)
)

// Default returns the cell holding the machine's clock, for boot code that
// passes the device around explicitly.
func Default() *borrow.Cell[*pl031.Device] {
	return clock
}

// ReadDate returns the current UTC date with the year as offset from 2000.
// An error means the clock is unavailable and should not stop the boot.
func ReadDate() (year, month, day uint8, err error) {
	clock.Do(func(dev *pl031.Device) {
		year, month, day, err = dev.ReadDate()
	})
	return
}

// ReadTime returns the current UTC time of day.
func ReadTime() (hour, minute, second uint8, err error) {
	clock.Do(func(dev *pl031.Device) {
		hour, minute, second, err = dev.ReadTime()
	})
	return
}

// GetTime implements the GetTime runtime service. Date and time come from a
// single register read.
func GetTime() (t efi.Time, err error) {
	clock.Do(func(dev *pl031.Device) {
		now, derr := dev.Now()
		if derr != nil {
			err = derr
			return
		}
		t = efi.NewTime(now)
	})
	return
}

// FixUp moves the clock's register window to the mapping described by descs.
// If the window isn't covered by descs FixUp panics with a
// *pl031.RelocationError and the clock keeps its old mapping: reading through
// it would be unsafe, so the boot can't continue.
func FixUp(descs []efi.MemoryDescriptor) {
	clock.Do(func(dev *pl031.Device) {
		if err := dev.Relocate(descs, translator); err != nil {
			panic(err)
		}
	})
}
