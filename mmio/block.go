package mmio

import "unsafe"

// Block is a view of a register block that starts at a fixed address.
// Offsets are in bytes. A Block created by NewBacking also carries the
// memory it points into and bounds-checks every register it hands out.
type Block struct {
	base uintptr
	size uintptr

	// backing store, nil for real hardware
	mem    []uint32
	origin uintptr
}

// NewBlock returns a view of the registers at base. The caller guarantees
// that base is a mapped peripheral address.
func NewBlock(base uintptr) Block {
	return Block{base: base}
}

// NewBacking allocates size bytes of zeroed memory and returns a Block over
// it. It stands in for a peripheral when there is no hardware underneath.
func NewBacking(size uintptr) Block {
	words := (size + 3) / 4
	if words == 0 {
		words = 1
	}
	mem := make([]uint32, words)
	origin := uintptr(unsafe.Pointer(&mem[0]))
	return Block{base: origin, size: words * 4, mem: mem, origin: origin}
}

// Base returns the address of the first register in the block.
func (b Block) Base() uintptr {
	return b.base
}

// Backed reports whether the block points into memory it owns.
func (b Block) Backed() bool {
	return b.mem != nil
}

// Sub returns the block that starts offset bytes into b.
func (b Block) Sub(offset uintptr) Block {
	b.check(offset, 0)
	s := b
	s.base = b.base + offset
	if b.mem != nil {
		s.size = b.size - offset
	}
	return s
}

// Reg returns the register at offset.
func (b Block) Reg(offset uintptr) *Register32 {
	b.check(offset, 4)
	return (*Register32)(unsafe.Pointer(b.base + offset))
}

// Peek reads the word at offset without going through a Register32, so it
// never shows up in a trace. Test code uses it to inspect a backing store.
func (b Block) Peek(offset uintptr) uint32 {
	if b.mem == nil {
		return b.Reg(offset).Get()
	}
	b.check(offset, 4)
	return b.mem[(b.base-b.origin+offset)/4]
}

// Poke writes the word at offset without tracing. Test code uses it to play
// the hardware side of a backing store.
func (b Block) Poke(offset uintptr, value uint32) {
	if b.mem == nil {
		b.Reg(offset).Set(value)
		return
	}
	b.check(offset, 4)
	b.mem[(b.base-b.origin+offset)/4] = value
}

func (b Block) check(offset, width uintptr) {
	if b.mem == nil {
		return
	}
	if offset%4 != 0 || offset+width > b.size {
		panic("mmio: register offset " + hex(offset) + " outside block of " + hex(b.size) + " bytes")
	}
}

// Overlay reinterprets the block as the register layout T. T must consist of
// Register32 fields and padding only.
func Overlay[T any](b Block) *T {
	var zero T
	b.check(0, unsafe.Sizeof(zero))
	return (*T)(unsafe.Pointer(b.base))
}

func hex(v uintptr) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0x0"
	}
	var buf [2 + 16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	i--
	buf[i] = 'x'
	i--
	buf[i] = '0'
	return string(buf[i:])
}
