//go:build !debug

// Package debug provides assertions that are checked when building with the
// debug tag and compile to no-ops otherwise.
//
// Firmware has no way to report a programming error other than stopping, so
// the checks exist to catch misuse during bring-up without paying for them in
// the shipped image.
package debug

// Guard assertions that need extra work to evaluate with `if
// debug.Enabled{...}`, so they vanish from release firmware.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}
