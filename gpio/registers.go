package gpio

import "sitara/mmio"

// Register layout of one GPIO module (32 pins).
type registerBlock struct {
	Revision       mmio.Register32 //0x000
	_              [3]uint32
	SysConfig      mmio.Register32 //0x010
	_              [3]uint32
	EOI            mmio.Register32 //0x020
	IRQStatusRaw0  mmio.Register32 //0x024
	IRQStatusRaw1  mmio.Register32 //0x028
	IRQStatus0     mmio.Register32 //0x02C
	IRQStatus1     mmio.Register32 //0x030
	IRQStatusSet0  mmio.Register32 //0x034
	IRQStatusSet1  mmio.Register32 //0x038
	IRQStatusClr0  mmio.Register32 //0x03C
	IRQStatusClr1  mmio.Register32 //0x040
	IRQWaken0      mmio.Register32 //0x044
	IRQWaken1      mmio.Register32 //0x048
	_              [50]uint32
	SysStatus      mmio.Register32 //0x114
	_              [6]uint32
	Ctrl           mmio.Register32 //0x130
	OE             mmio.Register32 //0x134, 1 = input
	DataIn         mmio.Register32 //0x138, read only
	DataOut        mmio.Register32 //0x13C
	LevelDetect0   mmio.Register32 //0x140
	LevelDetect1   mmio.Register32 //0x144
	RisingDetect   mmio.Register32 //0x148
	FallingDetect  mmio.Register32 //0x14C
	DebounceEnable mmio.Register32 //0x150
	DebouncingTime mmio.Register32 //0x154
	_              [14]uint32
	ClearDataOut   mmio.Register32 //0x190
	SetDataOut     mmio.Register32 //0x194
}

// BlockSize is the extent of a GPIO register block.
const BlockSize = 0x198

// CTRL bitfields
const ctrlDisableModule = 1 << 0
