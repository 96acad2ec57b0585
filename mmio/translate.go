package mmio

// PhysicalAddress is an address on the SoC bus, as printed in the manual.
type PhysicalAddress uint32

// VirtualAddress is an address the CPU can dereference.
type VirtualAddress uintptr

// Translator resolves a physical peripheral address to a virtual one. It
// reports false when the address is not mapped.
type Translator interface {
	Lookup(p PhysicalAddress) (VirtualAddress, bool)
}

// Identity is the translator for running with the MMU off.
type Identity struct{}

func (Identity) Lookup(p PhysicalAddress) (VirtualAddress, bool) {
	return VirtualAddress(p), true
}

// RegionSize is the granularity of a Window mapping: one device region is
// every address sharing the top byte.
const RegionSize = 1 << 24

// Window maps whole device regions, keyed by the top byte of the physical
// address, to the virtual base they were mapped at.
type Window map[uint8]VirtualAddress

// NewWindow maps the given regions back to back starting at virt.
func NewWindow(virt VirtualAddress, regions ...uint8) Window {
	w := make(Window, len(regions))
	for i, r := range regions {
		w[r] = virt + VirtualAddress(i)*RegionSize
	}
	return w
}

func (w Window) Lookup(p PhysicalAddress) (VirtualAddress, bool) {
	base, ok := w[uint8(p>>24)]
	if !ok {
		return 0, false
	}
	return base + VirtualAddress(p&(RegionSize-1)), true
}

// Resolve translates p and returns a Block over it.
func Resolve(tr Translator, p PhysicalAddress) (Block, bool) {
	if s, ok := tr.(*Sim); ok {
		return s.Block(p)
	}
	v, ok := tr.Lookup(p)
	if !ok {
		return Block{}, false
	}
	return NewBlock(uintptr(v)), true
}
