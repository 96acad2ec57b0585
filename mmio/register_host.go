//go:build !tinygo

package mmio

import "sync/atomic"

// Register32 is a 32-bit register backed by ordinary memory (regular Go, for
// testing). Loads and stores are atomic so the compiler can neither merge nor
// reorder them, which is what volatile gives us on hardware.
type Register32 struct {
	Reg uint32
}

// Get returns the value in the register.
func (r *Register32) Get() uint32 {
	v := atomic.LoadUint32(&r.Reg)
	trace(OpRead, r, v)
	return v
}

// Set updates the register value.
func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
	trace(OpWrite, r, value)
}

// SetBits reads the register, sets the given bits, and writes it back.
func (r *Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits reads the register, clears the given bits, and writes it back.
func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reads the register and returns true if any of the given bits is set.
func (r *Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the field of width mask at bit position pos with value.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
