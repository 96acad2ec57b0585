// Package intc drives the AM335x interrupt controller (INTC): identifying
// lines, masking and unmasking them, and acknowledging the active IRQ/FIQ.
// What runs when an interrupt fires is left to the caller.
package intc

import (
	"fmt"
	"io"

	"sitara/debug"
	"sitara/mmio"
)

// Controller owns the shared INTC registers and hands out Line handles.
// There is one per chip, but nothing here is global: build it from the base
// found during hardware discovery.
type Controller struct {
	base mmio.Block
	regs *registerBlock
}

// NewController returns a Controller for the INTC at base.
func NewController(base mmio.Block) *Controller {
	return &Controller{
		base: base,
		regs: mmio.Overlay[registerBlock](base),
	}
}

// Base returns the address of the controller registers.
func (c *Controller) Base() uintptr {
	return c.base.Base()
}

// Line returns the handle for n. It touches no register.
func (c *Controller) Line(n Number) Line {
	return Line{number: n, base: c.base}
}

// ActiveIRQ returns the line currently presented on the IRQ output.
func (c *Controller) ActiveIRQ() Number {
	return NumberFromRegister(c.regs.SIRIRQ.Get())
}

// ActiveFIQ returns the line currently presented on the FIQ output.
func (c *Controller) ActiveFIQ() Number {
	return NumberFromRegister(c.regs.SIRFIQ.Get())
}

// Reset issues a soft reset of the controller.
func (c *Controller) Reset() {
	c.regs.SysConfig.Set(sysConfigSoftReset)
	debug.Record(debug.EvtIRQReset, 0, 0, 0)
}

// ResetDone reports whether the last soft reset has completed.
func (c *Controller) ResetDone() bool {
	return c.regs.SysStatus.HasBits(sysStatusResetDone)
}

// WaitResetDone polls SYSSTATUS for at most limit retries after Reset.
func (c *Controller) WaitResetDone(limit int) error {
	return mmio.WaitUntilSetBounded(&c.regs.SysStatus, sysStatusResetDone, limit)
}

// AutoIdle turns on automatic clock gating of the interface clock.
func (c *Controller) AutoIdle() {
	c.regs.SysConfig.Set(sysConfigAutoIdle)
}

// GenerateNewIRQ acknowledges the active IRQ so the next one can be sorted.
func (c *Controller) GenerateNewIRQ() {
	c.regs.Control.Set(controlNewIRQAgr)
}

// GenerateNewFIQ acknowledges the active FIQ so the next one can be sorted.
func (c *Controller) GenerateNewFIQ() {
	c.regs.Control.Set(controlNewFIQAgr)
}

// SetThreshold masks every line whose priority is not higher (numerically
// lower) than priority. 0xFF turns the threshold off.
func (c *Controller) SetThreshold(priority uint8) {
	c.regs.Threshold.Set(uint32(priority))
}

// DisableThreshold lets every unmasked line through.
func (c *Controller) DisableThreshold() {
	c.SetThreshold(thresholdDisabled)
}

// DumpRawStatus prints the raw status of all four banks.
func (c *Controller) DumpRawStatus(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Dumping raw irq controller status:"); err != nil {
		return err
	}
	var itr [NumLines / LinesPerBank]uint32
	for i := range itr {
		b := mmio.Overlay[bankBlock](c.base.Sub(bankOffset + uintptr(i)*bankStride))
		itr[i] = b.ITR.Get()
	}
	_, err := fmt.Fprintf(w, "ITR0 %#x, ITR1 %#x, ITR2 %#x, ITR3 %#x\n", itr[0], itr[1], itr[2], itr[3])
	return err
}
