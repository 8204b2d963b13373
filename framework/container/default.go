package container

import "sync/atomic"

// std holds the process-wide Container.
var std atomic.Pointer[Container]

// Default returns the process-wide Container, creating it with default
// options on first use.
func Default() *Container {
	if c := std.Load(); c != nil {
		return c
	}
	std.CompareAndSwap(nil, New())
	return std.Load()
}

// SetDefault installs c as the process-wide Container. The application
// kernel calls it once at bootstrap; a nil c is ignored.
func SetDefault(c *Container) {
	if c == nil {
		return
	}
	std.Store(c)
}
