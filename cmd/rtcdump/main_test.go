//go:build linux

package main

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/hvfw/firmware/efi"
)

func TestReport(t *testing.T) {
	kernel := time.Date(2021, time.June, 15, 13, 45, 28, 400, time.UTC)
	tests := map[string]struct {
		ts     uint32
		kernel *time.Time
		want   string
	}{
		"decoded": {1623764730, nil, "" +
			"RTCDR     0x60c8aefa (1623764730)\n" +
			"date      2021 (21) 06 15\n" +
			"time      13:45:30 UTC\n"},
		"compare": {1623764730, &kernel, "" +
			"RTCDR     0x60c8aefa (1623764730)\n" +
			"date      2021 (21) 06 15\n" +
			"time      13:45:30 UTC\n" +
			"kernel    2021-06-15T13:45:28Z\n" +
			"drift     2s\n"},
		"unset": {0, nil, "" +
			"RTCDR     0x00000000 (0)\n" +
			"decode    pl031: timestamp 0: year 1970 not in [2000, 2255]\n"},
	}
	for name, tc := range tests {
		var buf bytes.Buffer
		report(&buf, tc.ts, tc.kernel)
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: got\n%s\nwant\n%s", name, got, tc.want)
		}
	}
}

func TestRelocation(t *testing.T) {
	rawMap := make([]byte, 0, 2*48)
	for _, d := range []efi.MemoryDescriptor{
		{Type: efi.MemoryMappedIO, PhysicalStart: 0x0900_0000, VirtualStart: 0xffff_8000_0900_0000, NumberOfPages: 1},
		{Type: efi.MemoryMappedIO, PhysicalStart: 0x0901_0000, VirtualStart: 0xffff_8000_0a00_0000, NumberOfPages: 1},
	} {
		rawMap = must(binary.Append(rawMap, binary.LittleEndian, &d))
		rawMap = append(rawMap, make([]byte, 48-efi.DescriptorSize)...)
	}
	descs, err := efi.ParseMemoryMap(rawMap, 48)
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		base uint64
		want string
	}{
		"mapped":   {0x0901_0000, "relocate  0x9010000 -> 0xffff80000a000000 (0x1000 bytes)\n"},
		"unmapped": {0x0902_0000, "relocate  pl031: relocate 0x9020000: address not covered by memory map: 0x9020000\n"},
	}
	for name, tc := range tests {
		var buf bytes.Buffer
		relocation(&buf, tc.base, descs)
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}
