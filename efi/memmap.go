// Package efi provides the parts of the UEFI memory model the firmware needs
// after an OS loader has called SetVirtualAddressMap: the memory descriptor
// table and the translation of firmware pointers through it.
package efi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hvfw/firmware/mem"
)

type MemoryType uint32

const (
	ReservedMemoryType MemoryType = iota
	LoaderCode
	LoaderData
	BootServicesCode
	BootServicesData
	RuntimeServicesCode
	RuntimeServicesData
	ConventionalMemory
	UnusableMemory
	ACPIReclaimMemory
	ACPIMemoryNVS
	MemoryMappedIO
	MemoryMappedIOPortSpace
	PalCode
	PersistentMemory
)

// Memory attributes
const (
	MemoryUC      uint64 = 1 << 0
	MemoryWC      uint64 = 1 << 1
	MemoryWT      uint64 = 1 << 2
	MemoryWB      uint64 = 1 << 3
	MemoryUCE     uint64 = 1 << 4
	MemoryWP      uint64 = 1 << 12
	MemoryRP      uint64 = 1 << 13
	MemoryXP      uint64 = 1 << 14
	MemoryRuntime uint64 = 1 << 63
)

// MemoryDescriptor is one entry of the UEFI memory map. The layout matches
// EFI_MEMORY_DESCRIPTOR.
type MemoryDescriptor struct {
	Type          MemoryType
	_             uint32
	PhysicalStart uint64
	VirtualStart  uint64
	NumberOfPages uint64
	Attribute     uint64
}

// DescriptorSize is the size of an encoded MemoryDescriptor. Firmware may
// report a larger stride, see [ParseMemoryMap].
const DescriptorSize = 40

var (
	ErrShortMap       = errors.New("memory map isn't a multiple of the descriptor size")
	ErrDescriptorSize = errors.New("descriptor size too small")
)

// Size returns the number of bytes described by d, saturating at
// math.MaxUint64.
func (d *MemoryDescriptor) Size() uint64 {
	if d.NumberOfPages > math.MaxUint64/mem.PageSize {
		return math.MaxUint64
	}
	return d.NumberOfPages * mem.PageSize
}

// Contains reports whether the physical range of d includes addr.
func (d *MemoryDescriptor) Contains(addr uint64) bool {
	return addr >= d.PhysicalStart && (addr-d.PhysicalStart)/mem.PageSize < d.NumberOfPages
}

// ParseMemoryMap decodes a raw memory map as handed to SetVirtualAddressMap.
// Entries are descriptorSize bytes apart, which may exceed DescriptorSize for
// newer revisions of the structure; trailing bytes of each entry are ignored.
func ParseMemoryMap(buf []byte, descriptorSize int) ([]MemoryDescriptor, error) {
	if descriptorSize < DescriptorSize {
		return nil, fmt.Errorf("%w: %d", ErrDescriptorSize, descriptorSize)
	}
	if len(buf)%descriptorSize != 0 {
		return nil, ErrShortMap
	}

	descs := make([]MemoryDescriptor, len(buf)/descriptorSize)
	for i := range descs {
		entry := buf[i*descriptorSize : i*descriptorSize+DescriptorSize]
		err := binary.Read(bytes.NewReader(entry), binary.LittleEndian, &descs[i])
		if err != nil {
			return nil, err
		}
	}
	return descs, nil
}
