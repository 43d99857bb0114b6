// Package mem describes windows of device memory and the primitive register
// accesses on them.
//
// A Region stores its base address as plain data. Nothing is derived from
// where the Region itself lives, so moving the window after the firmware's
// address space has been remapped is a matter of replacing the base.
package mem

import (
	"sync/atomic"
	"unsafe"

	"github.com/hvfw/firmware/debug"
)

// Addr is an address in the firmware's current view of device memory.
type Addr uint64

// PageSize is the granule of the firmware's memory map.
const PageSize = 0x1000

// Region is a contiguous window of device registers.
type Region struct {
	base Addr
	size uint64
}

// New returns a Region of size bytes starting at base. The window isn't
// probed or validated.
func New(base Addr, size uint64) Region {
	return Region{base: base, size: size}
}

// ReadU32 loads the 32-bit register at offset. The load is issued on every
// call and never cached. Reading past the end of the window or at an
// unaligned offset is a programming error.
//
//go:nosplit
func (r *Region) ReadU32(offset uint64) uint32 {
	debug.Assert(offset+4 <= r.size, "mmio read outside of region")
	debug.Assert(offset&0x3 == 0, "unaligned mmio read")
	reg := (*uint32)(unsafe.Pointer(uintptr(r.base) + uintptr(offset)))
	return atomic.LoadUint32(reg)
}

// Range returns the current base and the size of the window.
func (r *Region) Range() (Addr, uint64) {
	return r.base, r.size
}

// SetBase moves the window to base. The new mapping isn't checked for
// accessibility.
func (r *Region) SetBase(base Addr) {
	r.base = base
}

// Contains reports whether addr falls inside the window.
func (r *Region) Contains(addr Addr) bool {
	return addr >= r.base && uint64(addr-r.base) < r.size
}
