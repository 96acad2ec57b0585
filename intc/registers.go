package intc

import "sitara/mmio"

// Register layout of the INTC, offsets from the controller base.
type registerBlock struct {
	Revision    mmio.Register32 //0x00
	_           [3]uint32
	SysConfig   mmio.Register32 //0x10
	SysStatus   mmio.Register32 //0x14
	_           [10]uint32
	SIRIRQ      mmio.Register32 //0x40, active IRQ number
	SIRFIQ      mmio.Register32 //0x44, active FIQ number
	Control     mmio.Register32 //0x48, write only
	Protection  mmio.Register32 //0x4C
	Idle        mmio.Register32 //0x50
	_           [3]uint32
	IRQPriority mmio.Register32 //0x60
	FIQPriority mmio.Register32 //0x64
	Threshold   mmio.Register32 //0x68
}

// One bank of 32 lines. Bank n lives at 0x80 + n*0x20.
type bankBlock struct {
	ITR        mmio.Register32 //0x00, raw status, read only
	MIR        mmio.Register32 //0x04, mask (1 = masked)
	MIRClear   mmio.Register32 //0x08, write only
	MIRSet     mmio.Register32 //0x0C, write only
	ISRSet     mmio.Register32 //0x10, software interrupt set
	ISRClear   mmio.Register32 //0x14, write only
	PendingIRQ mmio.Register32 //0x18, read only
	PendingFIQ mmio.Register32 //0x1C, read only
}

const (
	bankOffset = 0x80
	bankStride = 0x20
	ilrOffset  = 0x100
	ilrStride  = 0x4

	// BlockSize is the extent of the INTC register block, ILR127 included.
	BlockSize = ilrOffset + NumLines*ilrStride
)

// SYSCONFIG bitfields
const sysConfigAutoIdle = 1 << 0
const sysConfigSoftReset = 1 << 1

// SYSSTATUS bitfields
const sysStatusResetDone = 1 << 0

// CONTROL bitfields
const controlNewIRQAgr = 1 << 0
const controlNewFIQAgr = 1 << 1

// ILR bitfields
const ilrFIQnIRQ = 1 << 0
const ilrPriorityPos = 2
const ilrPriorityMask = 0x3F //use with register32.ReplaceBits

// SIR_IRQ / SIR_FIQ: bits 6:0 carry the active line, 31:7 the spurious flag
const sirActiveMask = 0x7F

// THRESHOLD: 0xFF disables priority thresholding
const thresholdDisabled = 0xFF
