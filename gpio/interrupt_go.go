//go:build !tinygo

package gpio

// state is a placeholder for interrupt state on regular Go
type state uintptr

// disableInterrupts is a no-op on regular Go (for testing)
func disableInterrupts() state {
	return 0
}

// restoreInterrupts is a no-op on regular Go (for testing)
func restoreInterrupts(s state) {
	// No-op
}
