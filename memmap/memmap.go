// Package memmap lists the physical addresses of the AM335x peripherals
// used by this module, as given in the technical reference manual.
package memmap

import "sitara/mmio"

// RAM
const (
	DRAMStart mmio.PhysicalAddress = 0x8000_0000
	DRAMEnd   mmio.PhysicalAddress = 0x9FFF_FFFF
)

// Devices lists the 16 MiB regions (top address byte) that hold peripherals.
var Devices = [...]uint8{0x44, 0x47, 0x48, 0x4A}

// UART
const (
	UART0 mmio.PhysicalAddress = 0x44E0_9000
	UART1 mmio.PhysicalAddress = 0x4802_2000
	UART2 mmio.PhysicalAddress = 0x4802_4000
	UART3 mmio.PhysicalAddress = 0x481A_6000
	UART4 mmio.PhysicalAddress = 0x481A_8000
	UART5 mmio.PhysicalAddress = 0x481A_A000
)

const (
	IRQController mmio.PhysicalAddress = 0x4820_0000
	Timer0        mmio.PhysicalAddress = 0x44E0_5000
	Watchdog      mmio.PhysicalAddress = 0x44E3_5000
	Control       mmio.PhysicalAddress = 0x44E1_0000
)

// GPIO
const (
	GPIO0 mmio.PhysicalAddress = 0x44E0_7000
	GPIO1 mmio.PhysicalAddress = 0x4804_C000
	GPIO2 mmio.PhysicalAddress = 0x481A_C000
	GPIO3 mmio.PhysicalAddress = 0x481A_E000
)

var (
	uarts = [...]mmio.PhysicalAddress{UART0, UART1, UART2, UART3, UART4, UART5}
	gpios = [...]mmio.PhysicalAddress{GPIO0, GPIO1, GPIO2, GPIO3}
)

// NumUART and NumGPIO are the number of instances of each module.
const (
	NumUART = len(uarts)
	NumGPIO = len(gpios)
)

// UART returns the base of UART n.
func UART(n int) (mmio.PhysicalAddress, bool) {
	if n < 0 || n >= len(uarts) {
		return 0, false
	}
	return uarts[n], true
}

// GPIO returns the base of GPIO module n.
func GPIO(n int) (mmio.PhysicalAddress, bool) {
	if n < 0 || n >= len(gpios) {
		return 0, false
	}
	return gpios[n], true
}

// IsDevice reports whether p lies in one of the peripheral regions.
func IsDevice(p mmio.PhysicalAddress) bool {
	top := uint8(p >> 24)
	for _, d := range Devices {
		if d == top {
			return true
		}
	}
	return false
}

// IsDRAM reports whether p lies in external RAM.
func IsDRAM(p mmio.PhysicalAddress) bool {
	return p >= DRAMStart && p <= DRAMEnd
}
