package intc

// Number identifies one of the 128 interrupt sources of the INTC.
type Number uint8

const (
	// NumLines is the number of interrupt sources.
	NumLines = 128
	// LinesPerBank is the width of one mask/status bank.
	LinesPerBank = 32
	// MaxNumber is the highest valid interrupt number.
	MaxNumber Number = NumLines - 1
)

// Interrupt numbers of the AM335x peripherals driven by this module.
const (
	GPIOINT2A Number = 32
	GPIOINT2B Number = 33
	UART3INT  Number = 44
	UART4INT  Number = 45
	UART5INT  Number = 46
	GPIOINT3A Number = 62
	GPIOINT3B Number = 63
	TINT0     Number = 66
	TINT1     Number = 67
	TINT2     Number = 68
	UART0INT  Number = 72
	UART1INT  Number = 73
	UART2INT  Number = 74
	WDT1INT   Number = 91
	GPIOINT0A Number = 96
	GPIOINT0B Number = 97
	GPIOINT1A Number = 98
	GPIOINT1B Number = 99
)

// NewNumber validates a candidate interrupt number supplied from outside the
// hardware. It reports false for anything above MaxNumber.
func NewNumber(raw uint32) (Number, bool) {
	if raw > uint32(MaxNumber) {
		return 0, false
	}
	return Number(raw), true
}

// NumberFromRegister converts a value read from the controller. The hardware
// only ever reports lines in range, so the value is truncated rather than
// checked; the upper bits hold the spurious flag.
func NumberFromRegister(raw uint32) Number {
	return Number(raw & sirActiveMask)
}

// Bank returns the index of the 32-line bank holding n.
func (n Number) Bank() uint32 {
	return uint32(n) / LinesPerBank
}

// Bit returns the position of n inside its bank.
func (n Number) Bit() uint32 {
	return uint32(n) % LinesPerBank
}

// Mask returns the single-bit mask of n inside its bank.
func (n Number) Mask() uint32 {
	return 1 << n.Bit()
}
