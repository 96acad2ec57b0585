//go:build !tinygo

package mmio

import "runtime"

// spin yields so that a test goroutine playing the hardware can run.
func spin() {
	runtime.Gosched()
}
