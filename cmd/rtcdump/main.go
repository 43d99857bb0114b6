//go:build linux

// Command rtcdump reads the data register of a PL031 through /dev/mem and
// prints the decoded date and time the firmware would report.
//
// It runs on a Linux guest of the same machine and helps to verify the
// firmware's view of the clock against the kernel's RTC driver.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/u-root/u-root/pkg/memio"
	"github.com/u-root/u-root/pkg/rtc"

	"github.com/hvfw/firmware/drivers/rtc/pl031"
	"github.com/hvfw/firmware/efi"
	"github.com/hvfw/firmware/machine"
	"github.com/hvfw/firmware/mem"
)

const usageString = `PL031 register dump.

Usage: %s [flags]

`

var (
	base    = flag.Uint64("base", uint64(machine.PL031Base), "physical base address of the PL031")
	compare = flag.Bool("compare", false, "compare with the kernel's RTC")
	memmap  = flag.String("map", "", "raw UEFI memory map to resolve the PL031 through")
	stride  = flag.Int("stride", efi.DescriptorSize, "descriptor size of the memory map")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func must[T any](ret T, err error) T {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return ret
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	var dr memio.Uint32
	if err := memio.Read(int64(*base+pl031.RTCDR), &dr); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var kernel *time.Time
	if *compare {
		clk := must(rtc.OpenRTC())
		t := must(clk.Read())
		kernel = &t
	}

	report(os.Stdout, uint32(dr), kernel)

	if *memmap != "" {
		buf := must(os.ReadFile(*memmap))
		descs := must(efi.ParseMemoryMap(buf, *stride))
		relocation(os.Stdout, *base, descs)
	}
}

// report prints what the firmware's accessors return for the register value
// ts. If kernel is set the drift between both clocks is printed, too.
func report(w io.Writer, ts uint32, kernel *time.Time) {
	fmt.Fprintf(w, "RTCDR     %#08x (%d)\n", ts, ts)

	now, err := pl031.Decode(ts)
	if err != nil {
		fmt.Fprintf(w, "decode    %v\n", err)
		return
	}
	et := efi.NewTime(now)
	fmt.Fprintf(w, "date      %d (%02d) %02d %02d\n", et.Year, et.Year-pl031.BaseYear, et.Month, et.Day)
	fmt.Fprintf(w, "time      %02d:%02d:%02d UTC\n", et.Hour, et.Minute, et.Second)

	if kernel != nil {
		fmt.Fprintf(w, "kernel    %v\n", kernel.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "drift     %v\n", now.Sub(kernel.Truncate(time.Second)))
	}
}

// relocation prints where the firmware's fix-up would move the register
// window at base when given descs.
func relocation(w io.Writer, base uint64, descs []efi.MemoryDescriptor) {
	dev := pl031.New(mem.Addr(base))
	if err := dev.Relocate(descs, efi.ConverterFunc(efi.ConvertPointer)); err != nil {
		fmt.Fprintf(w, "relocate  %v\n", err)
		return
	}
	moved, size := dev.Region()
	fmt.Fprintf(w, "relocate  %#x -> %#x (%#x bytes)\n", base, uint64(moved), size)
}
