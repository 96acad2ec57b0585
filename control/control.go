// Package control gives access to the pad configuration registers of the
// AM335x control module, which select the function and electrical
// behaviour of every ball.
package control

import "sitara/mmio"

const (
	// PadOffset is where the conf_<pad> registers start inside the module.
	PadOffset = 0x800
	// NumPads is the number of conf_<pad> registers.
	NumPads = 141
	// BlockSize is the extent of the module used here.
	BlockSize = PadOffset + NumPads*4
)

type registerBlock struct {
	_   [PadOffset / 4]uint32
	Pad [NumPads]mmio.Register32 //0x800
}

// Module is the control module at a fixed base.
type Module struct {
	regs *registerBlock
}

// New returns the control module at base.
func New(base mmio.Block) *Module {
	return &Module{regs: mmio.Overlay[registerBlock](base)}
}

func index(offset uint32) (int, bool) {
	if offset%4 != 0 {
		return 0, false
	}
	i := int(offset / 4)
	if i >= NumPads {
		return 0, false
	}
	return i, true
}

// Set writes value to the pad register at offset bytes past PadOffset. It
// reports false, writing nothing, for an offset outside the pad registers.
func (m *Module) Set(offset uint32, value uint32) bool {
	i, ok := index(offset)
	if !ok {
		return false
	}
	m.regs.Pad[i].Set(value)
	return true
}

// Get reads the pad register at offset bytes past PadOffset.
func (m *Module) Get(offset uint32) (uint32, bool) {
	i, ok := index(offset)
	if !ok {
		return 0, false
	}
	return m.regs.Pad[i].Get(), true
}
