package intc

import (
	"sitara/debug"
	"sitara/mmio"
)

// Register selects one of the per-bank registers for Line.Read and Line.Write.
type Register uint8

const (
	Status Register = iota
	Mask
	MaskClear
	MaskSet
	SoftwareSet
	SoftwareClear
	PendingIRQ
	PendingFIQ
)

func (r Register) String() string {
	switch r {
	case Status:
		return "ITR"
	case Mask:
		return "MIR"
	case MaskClear:
		return "MIR_CLEAR"
	case MaskSet:
		return "MIR_SET"
	case SoftwareSet:
		return "ISR_SET"
	case SoftwareClear:
		return "ISR_CLEAR"
	case PendingIRQ:
		return "PENDING_IRQ"
	case PendingFIQ:
		return "PENDING_FIQ"
	}
	return "unknown"
}

// Line is a handle on one interrupt source. It holds no state beyond the
// number and the controller base, so it can be rebuilt at will.
type Line struct {
	number Number
	base   mmio.Block
}

// Number returns the interrupt number of the line.
func (l Line) Number() Number {
	return l.number
}

// BankAddress returns the address of the bank registers of the line.
func (l Line) BankAddress() uintptr {
	return l.base.Base() + bankOffset + uintptr(l.number.Bank())*bankStride
}

// PriorityAddress returns the address of the ILR register of the line.
func (l Line) PriorityAddress() uintptr {
	return l.base.Base() + ilrOffset + uintptr(l.number)*ilrStride
}

func (l Line) bank() *bankBlock {
	return mmio.Overlay[bankBlock](l.base.Sub(bankOffset + uintptr(l.number.Bank())*bankStride))
}

func (l Line) ilr() *mmio.Register32 {
	return l.base.Reg(ilrOffset + uintptr(l.number)*ilrStride)
}

// Enable unmasks the line. Only the MIR_CLEAR register is written, so
// concurrent changes to other lines of the bank cannot be lost.
func (l Line) Enable() {
	l.bank().MIRClear.Set(l.number.Mask())
	debug.Record(debug.EvtIRQEnable, 0, uint32(l.number), 0)
}

// Disable masks the line through MIR_SET.
func (l Line) Disable() {
	l.bank().MIRSet.Set(l.number.Mask())
	debug.Record(debug.EvtIRQDisable, 0, uint32(l.number), 0)
}

// Pending reports whether the line has an IRQ pending after masking.
func (l Line) Pending() bool {
	return l.bank().PendingIRQ.HasBits(l.number.Mask())
}

// PendingFIQ reports whether the line has an FIQ pending after masking.
func (l Line) PendingFIQ() bool {
	return l.bank().PendingFIQ.HasBits(l.number.Mask())
}

// Raw reports the raw, unmasked input of the line.
func (l Line) Raw() bool {
	return l.bank().ITR.HasBits(l.number.Mask())
}

// DebugSetSoftwareIRQ raises the line from software. For diagnostics only.
func (l Line) DebugSetSoftwareIRQ() {
	l.bank().ISRSet.Set(l.number.Mask())
}

// DebugClearSoftwareIRQ drops a software-raised interrupt.
func (l Line) DebugClearSoftwareIRQ() {
	l.bank().ISRClear.Set(l.number.Mask())
}

// Read returns the bit of the line in reg. Write-only registers read as
// false.
func (l Line) Read(reg Register) bool {
	b := l.bank()
	var r *mmio.Register32
	switch reg {
	case Status:
		r = &b.ITR
	case Mask:
		r = &b.MIR
	case SoftwareSet:
		r = &b.ISRSet
	case PendingIRQ:
		r = &b.PendingIRQ
	case PendingFIQ:
		r = &b.PendingFIQ
	default:
		return false
	}
	return r.HasBits(l.number.Mask())
}

// Write sets the bit of the line in reg to val. Writing Mask goes through
// MIR_SET or MIR_CLEAR. The set/clear registers only act on a true val;
// writing false to them, or writing any read-only register, does nothing.
func (l Line) Write(reg Register, val bool) {
	switch reg {
	case Mask:
		if val {
			l.Disable()
		} else {
			l.Enable()
		}
		return
	}
	if !val {
		return
	}
	b := l.bank()
	switch reg {
	case MaskClear:
		b.MIRClear.Set(l.number.Mask())
	case MaskSet:
		b.MIRSet.Set(l.number.Mask())
	case SoftwareSet:
		b.ISRSet.Set(l.number.Mask())
	case SoftwareClear:
		b.ISRClear.Set(l.number.Mask())
	}
}

// SetPriority programs the ILR register: priority 0 is the highest, 63 the
// lowest. With fiq set the line is routed to FIQ instead of IRQ.
func (l Line) SetPriority(priority uint8, fiq bool) {
	v := uint32(priority&ilrPriorityMask) << ilrPriorityPos
	if fiq {
		v |= ilrFIQnIRQ
	}
	l.ilr().Set(v)
}

// Priority returns the programmed priority and whether the line goes to FIQ.
func (l Line) Priority() (priority uint8, fiq bool) {
	v := l.ilr().Get()
	return uint8(v>>ilrPriorityPos) & ilrPriorityMask, v&ilrFIQnIRQ != 0
}
