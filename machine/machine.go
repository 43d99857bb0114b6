// Package machine describes the platform the firmware is built for: the
// physical memory map of the QEMU virt board for aarch64.
//
// All addresses are physical. The firmware runs identity mapped until an OS
// loader installs its own page tables, after which drivers are expected to
// fix up their cached addresses.
package machine

import "github.com/hvfw/firmware/mem"

// PL031 real time clock
const PL031Base mem.Addr = 0x0901_0000
