package uart

import (
	"sitara/debug"
	"sitara/mmio"
)

// Settings is the line configuration applied by Init.
type Settings struct {
	Divisor     uint16
	LineControl uint32
}

// DefaultSettings is 115200 baud 8N1 on the 48 MHz functional clock.
var DefaultSettings = Settings{Divisor: 0x1A, LineControl: LCR8N1}

// MaxDivisor is the largest value the DLH:DLL latches hold.
const MaxDivisor = 0x3FFF

func divisor(clockHz, baud uint32) uint32 {
	if baud == 0 {
		return 0
	}
	return clockHz / (16 * baud)
}

// Divisor returns the 16x oversampling divisor for baud, rounded down.
func Divisor(clockHz, baud uint32) uint16 {
	return uint16(divisor(clockHz, baud))
}

// ValidDivisor is Divisor that reports false when baud cannot be reached
// from clockHz, that is when the divisor falls outside 1..MaxDivisor.
func ValidDivisor(clockHz, baud uint32) (uint16, bool) {
	d := divisor(clockHz, baud)
	if d < 1 || d > MaxDivisor {
		return 0, false
	}
	return uint16(d), true
}

// Init brings up the port at base and returns it in operating mode. The
// register writes follow the order the module requires: anything else can
// leave it latched in an inconsistent configuration.
func Init(base mmio.Block, settings Settings) *Operating {
	return InitUnit(base, 0, settings)
}

// InitUnit is Init for a port whose debug events carry unit.
func InitUnit(base mmio.Block, unit uint8, settings Settings) *Operating {
	op := NewOperating(base)
	op.SetUnit(unit)

	op.SetModeSelect(ModeDisabled)
	op.SetInterruptEnable(0)

	cfg := op.EnterConfig()
	cfg.EnableEnhanced()
	cfg.SetDivisor(settings.Divisor)
	cfg.SetModemControl(mcrDTR | mcrRTS)
	op = cfg.ExitConfigWith(settings.LineControl)

	op.SetModeSelect(ModeUART16x)
	op.SetFIFOControl(0)
	op.SetInterruptEnable(0)

	debug.Record(debug.EvtUARTInit, unit, uint32(settings.Divisor), settings.LineControl)
	return op
}
