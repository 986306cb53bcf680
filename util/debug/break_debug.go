//go:build debug

package debug

import "runtime"

// Enabled reports whether the binary was built with the debug tag.
const Enabled = true

func debugBreak() {
	runtime.Breakpoint()
}
