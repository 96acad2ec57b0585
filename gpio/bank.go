// Package gpio hands out exclusive, direction-typed handles on the pins of
// an AM335x GPIO module.
//
// A Bank tracks which of its 32 bits are taken. At most one live handle
// exists per bit: allocation fails for a taken bit, and a bit only becomes
// free again through ReleaseInput or ReleaseOutput. Every allocation,
// release and direction change starts a new generation of the bit, which
// kills all earlier handles for it, copies included.
package gpio

import (
	"sitara/debug"
	"sitara/mmio"
)

// MaxBit is the highest pin index inside a bank.
const MaxBit = 31

// Bank owns one 32-pin GPIO register block and its ownership mask.
type Bank struct {
	index uint8
	regs  *registerBlock
	owned uint32
	gen   [MaxBit + 1]uint32
}

// NewBank returns a Bank over the GPIO module at base. index is the module
// number (GPIO0..GPIO3) and only shows up in debug events.
func NewBank(index uint8, base mmio.Block) *Bank {
	return &Bank{
		index: index,
		regs:  mmio.Overlay[registerBlock](base),
	}
}

// Index returns the module number of the bank.
func (b *Bank) Index() uint8 {
	return b.index
}

// Owned returns the ownership mask: bit i is set while a handle for pin i is
// live.
func (b *Bank) Owned() uint32 {
	return b.owned
}

// EnableModule clears CTRL.DISABLEMODULE so the pins are clocked.
func (b *Bank) EnableModule() {
	b.regs.Ctrl.ClearBits(ctrlDisableModule)
}

// AllocateAsInput claims bit as an input. It reports false when bit is out
// of range or already owned; no register is touched in that case.
func (b *Bank) AllocateAsInput(bit uint8) (*InputPin, bool) {
	gen, ok := b.allocate(bit, false)
	if !ok {
		return nil, false
	}
	return &InputPin{pin{bit: bit, gen: gen, bank: b}}, true
}

// AllocateAsOutput claims bit as an output. It reports false when bit is out
// of range or already owned; no register is touched in that case.
func (b *Bank) AllocateAsOutput(bit uint8) (*OutputPin, bool) {
	gen, ok := b.allocate(bit, true)
	if !ok {
		return nil, false
	}
	return &OutputPin{pin{bit: bit, gen: gen, bank: b}}, true
}

func (b *Bank) allocate(bit uint8, output bool) (uint32, bool) {
	if bit > MaxBit {
		return 0, false
	}
	mask := uint32(1) << bit

	state := disableInterrupts()
	defer restoreInterrupts(state)

	// Check whether the pin was already given to someone
	if b.owned&mask != 0 {
		return 0, false
	}
	b.owned |= mask
	b.gen[bit]++
	b.setDirection(mask, output)

	debug.Record(debug.EvtPinClaim, b.index, uint32(bit), boolToU32(output))
	return b.gen[bit], true
}

func (b *Bank) setDirection(mask uint32, output bool) {
	if output {
		b.regs.OE.ClearBits(mask)
	} else {
		b.regs.OE.SetBits(mask)
	}
}

func (b *Bank) owns(p *pin) bool {
	return p != nil && p.bank == b && p.bit <= MaxBit && p.live()
}

// ReleaseInput returns the pin of p to the bank and retires p. It reports
// false if p is not a live handle from this bank.
func (b *Bank) ReleaseInput(p *InputPin) bool {
	if p == nil {
		return false
	}
	return b.release(&p.pin)
}

// ReleaseOutput returns the pin of p to the bank and retires p. It reports
// false if p is not a live handle from this bank.
func (b *Bank) ReleaseOutput(p *OutputPin) bool {
	if p == nil {
		return false
	}
	return b.release(&p.pin)
}

func (b *Bank) release(p *pin) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !b.owns(p) {
		return false
	}
	b.owned &^= 1 << p.bit
	b.gen[p.bit]++
	debug.Record(debug.EvtPinRelease, b.index, uint32(p.bit), 0)
	p.retire()
	return true
}

// ToInput turns an output into an input. p is retired and the returned
// handle takes its place; the bit stays owned throughout.
func (b *Bank) ToInput(p *OutputPin) (*InputPin, bool) {
	if p == nil {
		return nil, false
	}
	gen, ok := b.redirect(&p.pin, false)
	if !ok {
		return nil, false
	}
	return &InputPin{pin{bit: p.bit, gen: gen, bank: b}}, true
}

// ToOutput turns an input into an output. p is retired and the returned
// handle takes its place; the bit stays owned throughout.
func (b *Bank) ToOutput(p *InputPin) (*OutputPin, bool) {
	if p == nil {
		return nil, false
	}
	gen, ok := b.redirect(&p.pin, true)
	if !ok {
		return nil, false
	}
	return &OutputPin{pin{bit: p.bit, gen: gen, bank: b}}, true
}

func (b *Bank) redirect(p *pin, output bool) (uint32, bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !b.owns(p) {
		return 0, false
	}
	b.gen[p.bit]++
	b.setDirection(1<<p.bit, output)
	debug.Record(debug.EvtPinDirection, b.index, uint32(p.bit), boolToU32(output))
	p.retire()
	return b.gen[p.bit], true
}

func boolToU32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
