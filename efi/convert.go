package efi

import (
	"errors"
	"fmt"
)

var ErrNotMapped = errors.New("address not covered by memory map")

// ConvertPointer translates addr, a pointer in the identity mapped view the
// firmware booted with, to the virtual address assigned by descs. The first
// descriptor whose physical range contains addr wins.
func ConvertPointer(descs []MemoryDescriptor, addr uint64) (uint64, error) {
	for i := range descs {
		d := &descs[i]
		if d.Contains(addr) {
			return d.VirtualStart + (addr - d.PhysicalStart), nil
		}
	}
	return 0, fmt.Errorf("%w: %#x", ErrNotMapped, addr)
}

// ConverterFunc adapts a function to the translator interface expected by
// device drivers that need fixing up after a remap.
type ConverterFunc func(descs []MemoryDescriptor, addr uint64) (uint64, error)

func (f ConverterFunc) ConvertPointer(descs []MemoryDescriptor, addr uint64) (uint64, error) {
	return f(descs, addr)
}
