package uart

import "sitara/mmio"

// Operating mode layout.
type operatingBlock struct {
	Data      mmio.Register32 //0x00, RHR on read, THR on write
	IER       mmio.Register32 //0x04
	IIR       mmio.Register32 //0x08, FCR on write
	LCR       mmio.Register32 //0x0C
	MCR       mmio.Register32 //0x10
	LSR       mmio.Register32 //0x14
	TCR       mmio.Register32 //0x18
	TLR       mmio.Register32 //0x1C
	MDR1      mmio.Register32 //0x20
	MDR2      mmio.Register32 //0x24
	_         [6]uint32
	SCR       mmio.Register32 //0x40
	SSR       mmio.Register32 //0x44
	_         [7]uint32
	RxFIFOLvl mmio.Register32 //0x64
	TxFIFOLvl mmio.Register32 //0x68
}

// Configuration mode B layout over the same address. Reached by writing
// lcrConfigB to LCR.
type configBlock struct {
	DLL  mmio.Register32 //0x00
	DLH  mmio.Register32 //0x04
	EFR  mmio.Register32 //0x08
	LCR  mmio.Register32 //0x0C
	MCR  mmio.Register32 //0x10
	_    [3]uint32
	MDR1 mmio.Register32 //0x20
}

// BlockSize is the extent of a UART register block.
const BlockSize = 0x6C

const (
	lcrConfigB = 0xBF // Sentinel that switches LCR into config mode B

	LCR8N1 = 0x03 // 8 data bits, no parity, 1 stop bit

	efrEnhancedEn = 1 << 4

	mcrDTR = 1 << 0
	mcrRTS = 1 << 1

	lsrRxFIFOE    = 1 << 0 // At least one byte in the RX FIFO
	ssrTxFIFOFull = 1 << 0
	dlhMask       = 0x3F
)

// Mode select values for MDR1.
const (
	ModeUART16x  = 0x0
	ModeDisabled = 0x7
)
