// Package uart drives the AM335x UART through its two register views.
//
// The port is either in operating mode, where DATA and the status registers
// are visible, or in configuration mode B, where the same addresses hold the
// divisor latches and the enhanced feature register. Each view is a
// separate handle type. Switching views hands back a new handle and retires
// the old one, so a stale view cannot be used without a panic.
package uart

import (
	"sitara/debug"
	"sitara/mmio"
)

// State names the register view a port is in.
type State uint8

const (
	StateOperating State = iota
	StateConfig
)

func (s State) String() string {
	if s == StateConfig {
		return "config"
	}
	return "operating"
}

// Mode is implemented by the two handle types only.
type Mode interface {
	State() State
	Live() bool
	sealed()
}

// Operating is a port in operating mode.
type Operating struct {
	base mmio.Block
	regs *operatingBlock
	unit uint8
}

// Config is a port in configuration mode B. It remembers the line control
// value that ExitConfig puts back.
type Config struct {
	base  mmio.Block
	regs  *configBlock
	saved uint32
	unit  uint8
}

var (
	_ Mode = (*Operating)(nil)
	_ Mode = (*Config)(nil)
)

// NewOperating wraps the port at base, which must be in operating mode.
func NewOperating(base mmio.Block) *Operating {
	return &Operating{base: base, regs: mmio.Overlay[operatingBlock](base)}
}

// SetUnit tags the debug events of the port with a port number.
func (u *Operating) SetUnit(n uint8) {
	u.unit = n
}

func (u *Operating) State() State { return StateOperating }
func (u *Operating) Live() bool   { return u.regs != nil }
func (u *Operating) sealed()      {}

func (c *Config) State() State { return StateConfig }
func (c *Config) Live() bool   { return c.regs != nil }
func (c *Config) sealed()      {}

func (u *Operating) r() *operatingBlock {
	if u.regs == nil {
		panic("uart: use of operating mode handle after EnterConfig")
	}
	return u.regs
}

func (c *Config) r() *configBlock {
	if c.regs == nil {
		panic("uart: use of config mode handle after ExitConfig")
	}
	return c.regs
}

// EnterConfig saves LCR, writes the config mode B sentinel and returns the
// config view. u is retired.
func (u *Operating) EnterConfig() *Config {
	regs := u.r()
	saved := regs.LCR.Get()
	regs.LCR.Set(lcrConfigB)
	u.regs = nil

	debug.Record(debug.EvtConfigEnter, u.unit, saved, 0)
	return &Config{
		base:  u.base,
		regs:  mmio.Overlay[configBlock](u.base),
		saved: saved,
		unit:  u.unit,
	}
}

// ExitConfig writes the saved line control value back and returns the
// operating view. c is retired.
func (c *Config) ExitConfig() *Operating {
	c.r()
	return c.ExitConfigWith(c.saved)
}

// ExitConfigWith leaves config mode by writing lcr, the new character
// format, instead of the saved value. c is retired.
func (c *Config) ExitConfigWith(lcr uint32) *Operating {
	regs := c.r()
	if lcr == lcrConfigB {
		panic("uart: config mode sentinel used as line control")
	}
	regs.LCR.Set(lcr)
	c.regs = nil

	debug.Record(debug.EvtConfigExit, c.unit, lcr, 0)
	return &Operating{
		base: c.base,
		regs: mmio.Overlay[operatingBlock](c.base),
		unit: c.unit,
	}
}

// EnableEnhanced sets EFR.ENHANCED_EN, unlocking the extended registers.
func (c *Config) EnableEnhanced() {
	c.r().EFR.SetBits(efrEnhancedEn)
}

// SetDivisor programs the baud rate divisor latches.
func (c *Config) SetDivisor(div uint16) {
	regs := c.r()
	regs.DLL.Set(uint32(div & 0xFF))
	regs.DLH.Set(uint32(div>>8) & dlhMask)
}

// Divisor reads back the divisor latches.
func (c *Config) Divisor() uint16 {
	regs := c.r()
	return uint16(regs.DLH.Get()&dlhMask)<<8 | uint16(regs.DLL.Get()&0xFF)
}

// SetModemControl writes MCR.
func (c *Config) SetModemControl(v uint32) {
	c.r().MCR.Set(v)
}

// LineControl returns the LCR value saved by EnterConfig.
func (c *Config) LineControl() uint32 {
	c.r()
	return c.saved
}

// SetModeSelect writes MDR1.MODESELECT.
func (c *Config) SetModeSelect(v uint32) {
	c.r().MDR1.Set(v)
}
