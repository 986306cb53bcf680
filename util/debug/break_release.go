//go:build !debug

package debug

// Enabled reports whether the binary was built with the debug tag.
const Enabled = false

func debugBreak() {}
