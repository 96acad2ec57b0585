package control

// Pull selects the internal resistor of a pad.
type Pull uint8

const (
	PullNone Pull = iota
	PullDown
	PullUp
)

// PadConfig is the decoded content of a conf_<pad> register.
type PadConfig struct {
	Mode     uint8 // Mux mode, 0..7
	Pull     Pull
	Receiver bool // Input buffer enabled
	SlowSlew bool
}

// conf_<pad> bitfields
const (
	padModeMask    = 0x7
	padPullDisable = 1 << 3 // 0 = resistor enabled
	padPullUp      = 1 << 4
	padRxActive    = 1 << 5
	padSlewSlow    = 1 << 6
)

// ModeGPIO is the mux mode that routes a pad to its GPIO module.
const ModeGPIO = 7

// Encode returns the register value for c.
func (c PadConfig) Encode() uint32 {
	v := uint32(c.Mode) & padModeMask
	switch c.Pull {
	case PullNone:
		v |= padPullDisable
	case PullUp:
		v |= padPullUp
	}
	if c.Receiver {
		v |= padRxActive
	}
	if c.SlowSlew {
		v |= padSlewSlow
	}
	return v
}

// DecodePad unpacks a conf_<pad> register value.
func DecodePad(v uint32) PadConfig {
	c := PadConfig{
		Mode:     uint8(v & padModeMask),
		Receiver: v&padRxActive != 0,
		SlowSlew: v&padSlewSlow != 0,
	}
	switch {
	case v&padPullDisable != 0:
		c.Pull = PullNone
	case v&padPullUp != 0:
		c.Pull = PullUp
	default:
		c.Pull = PullDown
	}
	return c
}
