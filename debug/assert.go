//go:build debug

package debug

// Guard assertions that need extra work to evaluate with `if
// debug.Enabled{...}`, so they vanish from release firmware.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}
