package mmio

import "errors"

// ErrTimeout is returned by the bounded waits when the register never
// reached the expected state.
var ErrTimeout = errors.New("mmio: timed out waiting for register")

// WaitWhileSet spins as long as any bit of mask is set in r. There is no
// timeout: a stuck peripheral hangs the caller.
func WaitWhileSet(r *Register32, mask uint32) {
	for r.HasBits(mask) {
		spin()
	}
}

// WaitUntilSet spins until any bit of mask is set in r. There is no timeout.
func WaitUntilSet(r *Register32, mask uint32) {
	for !r.HasBits(mask) {
		spin()
	}
}

// WaitWhileSetBounded is WaitWhileSet giving up after limit additional polls.
func WaitWhileSetBounded(r *Register32, mask uint32, limit int) error {
	for i := 0; ; i++ {
		if !r.HasBits(mask) {
			return nil
		}
		if i >= limit {
			return ErrTimeout
		}
		spin()
	}
}

// WaitUntilSetBounded is WaitUntilSet giving up after limit additional polls.
func WaitUntilSetBounded(r *Register32, mask uint32, limit int) error {
	for i := 0; ; i++ {
		if r.HasBits(mask) {
			return nil
		}
		if i >= limit {
			return ErrTimeout
		}
		spin()
	}
}
