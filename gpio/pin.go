package gpio

// pin is the part shared by both directions: a bit, the bank that issued it
// and the generation of the bit at the time it was issued. A bank bumps the
// generation on every allocation, release and direction change, so a handle
// (or a copy of one) from an earlier generation is dead.
type pin struct {
	bit  uint8
	gen  uint32
	bank *Bank
}

func (p *pin) live() bool {
	return p.bank != nil && p.bank.gen[p.bit] == p.gen && p.bank.owned&(1<<p.bit) != 0
}

func (p *pin) mask() uint32 {
	if !p.live() {
		panic("gpio: use of released pin")
	}
	return 1 << p.bit
}

// Bit returns the position of the pin inside its bank.
func (p *pin) Bit() uint8 {
	return p.bit
}

// Live reports whether the handle still owns its pin.
func (p *pin) Live() bool {
	return p.live()
}

func (p *pin) retire() {
	p.bank = nil
}

// OutputPin is an exclusive handle on a pin configured as output.
type OutputPin struct {
	pin
}

// Set drives the pin high through SETDATAOUT.
func (p *OutputPin) Set() {
	m := p.mask()
	p.bank.regs.SetDataOut.Set(m)
}

// Clear drives the pin low through CLEARDATAOUT.
func (p *OutputPin) Clear() {
	m := p.mask()
	p.bank.regs.ClearDataOut.Set(m)
}

// Switch inverts the pin. There is no toggle register, so this is a
// read-modify-write of DATAOUT: a concurrent change to another pin of the
// same bank between the read and the write is lost.
func (p *OutputPin) Switch() {
	m := p.mask()
	regs := p.bank.regs
	regs.DataOut.Set(regs.DataOut.Get() ^ m)
}

// Read returns the level the pin is asked to drive. That is DATAOUT, not
// necessarily the level on the wire.
func (p *OutputPin) Read() bool {
	m := p.mask()
	return p.bank.regs.DataOut.HasBits(m)
}

// InputPin is an exclusive handle on a pin configured as input.
type InputPin struct {
	pin
}

// Read samples the pin through DATAIN.
func (p *InputPin) Read() bool {
	m := p.mask()
	return p.bank.regs.DataIn.HasBits(m)
}
