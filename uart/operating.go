package uart

import (
	"tinygo.org/x/drivers"

	"sitara/console"
	"sitara/mmio"
)

var (
	_ drivers.UART    = (*Operating)(nil)
	_ console.Console = (*Operating)(nil)
)

// LineControl returns LCR.
func (u *Operating) LineControl() uint32 {
	return u.r().LCR.Get()
}

// SetLineControl writes LCR. Writing lcrConfigB here would switch the
// registers under the handle; use EnterConfig for that.
func (u *Operating) SetLineControl(v uint32) {
	if v == lcrConfigB {
		panic("uart: config mode sentinel written through operating handle")
	}
	u.r().LCR.Set(v)
}

// SetModeSelect writes MDR1.MODESELECT.
func (u *Operating) SetModeSelect(v uint32) {
	u.r().MDR1.Set(v)
}

// SetInterruptEnable writes IER.
func (u *Operating) SetInterruptEnable(v uint32) {
	u.r().IER.Set(v)
}

// SetFIFOControl writes FCR, which shares its address with IIR.
func (u *Operating) SetFIFOControl(v uint32) {
	u.r().IIR.Set(v)
}

// Putc waits for room in the TX FIFO and sends c.
func (u *Operating) Putc(c byte) {
	regs := u.r()
	mmio.WaitWhileSet(&regs.SSR, ssrTxFIFOFull)
	regs.Data.Set(uint32(c))
}

// PutcBounded is Putc giving up with mmio.ErrTimeout after limit polls.
func (u *Operating) PutcBounded(c byte, limit int) error {
	regs := u.r()
	if err := mmio.WaitWhileSetBounded(&regs.SSR, ssrTxFIFOFull, limit); err != nil {
		return err
	}
	regs.Data.Set(uint32(c))
	return nil
}

// Getc waits for a byte and returns it, with CR mapped to LF.
func (u *Operating) Getc() byte {
	regs := u.r()
	mmio.WaitUntilSet(&regs.LSR, lsrRxFIFOE)
	return console.InputByte(byte(regs.Data.Get()))
}

// GetcBounded is Getc giving up with mmio.ErrTimeout after limit polls.
func (u *Operating) GetcBounded(limit int) (byte, error) {
	regs := u.r()
	if err := mmio.WaitUntilSetBounded(&regs.LSR, lsrRxFIFOE, limit); err != nil {
		return 0, err
	}
	return console.InputByte(byte(regs.Data.Get())), nil
}

// Flush waits until the TX FIFO has room again.
func (u *Operating) Flush() {
	mmio.WaitWhileSet(&u.r().SSR, ssrTxFIFOFull)
}

// Write sends p as text: every LF goes out as CR LF.
func (u *Operating) Write(p []byte) (int, error) {
	u.r()
	console.Expand(p, u.Putc)
	return len(p), nil
}

// WriteString is Write for a string.
func (u *Operating) WriteString(s string) (int, error) {
	return u.Write([]byte(s))
}

// WriteByte sends c untranslated.
func (u *Operating) WriteByte(c byte) error {
	u.Putc(c)
	return nil
}

// Buffered returns the number of bytes waiting in the RX FIFO.
func (u *Operating) Buffered() int {
	return int(u.r().RxFIFOLvl.Get())
}

// Read copies the bytes already in the RX FIFO into p without waiting. The
// bytes are returned as received.
func (u *Operating) Read(p []byte) (int, error) {
	regs := u.r()
	n := 0
	for n < len(p) && regs.LSR.HasBits(lsrRxFIFOE) {
		p[n] = byte(regs.Data.Get())
		n++
	}
	return n, nil
}
