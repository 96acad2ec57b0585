// Package beaglebone knows which GPIO lines reach the BeagleBone expansion
// headers and which control module pad drives each of them.
package beaglebone

import "sitara/control"

// padOffsets maps a global GPIO number (module*32 + bit) to its pad register
// offset, relative to control.PadOffset. Lines already used by the board are
// left out.
var padOffsets = map[uint8]uint32{
	// P8
	38: 0x018, 39: 0x01C, 34: 0x008, 35: 0x00C,
	66: 0x090, 67: 0x094, 69: 0x09C, 68: 0x098,
	45: 0x034, 44: 0x030, 23: 0x024, 26: 0x028,
	47: 0x03C, 46: 0x038, 27: 0x02C, 65: 0x08C,
	22: 0x020, 63: 0x084, 62: 0x080, 37: 0x014,
	36: 0x010, 33: 0x004, 32: 0x000, 61: 0x07C,
	86: 0x0E0, 88: 0x0E8, 87: 0x0E4, 89: 0x0EC,
	10: 0x0D8, 11: 0x0DC, 9: 0x0D4, 81: 0x0CC,
	8: 0x0D0, 80: 0x0C8, 78: 0x0C0, 79: 0x0C4,
	76: 0x0B8, 77: 0x0BC, 74: 0x0B0, 75: 0x0B4,
	72: 0x0A8, 73: 0x0AC, 70: 0x0A0, 71: 0x0A4,

	// P9
	30: 0x070, 60: 0x078, 31: 0x074, 50: 0x048,
	48: 0x040, 51: 0x04C, 5: 0x15C, 4: 0x158,
	3: 0x154, 2: 0x150, 49: 0x044, 15: 0x184,
	14: 0x180, 115: 0x1A4, 20: 0x1B4, 116: 0x1A8,
	7: 0x164,
}

// PinOffset returns the pad register offset for GPIO line gpio.
func PinOffset(gpio uint8) (uint32, bool) {
	off, ok := padOffsets[gpio]
	return off, ok
}

// Pins returns every GPIO line reachable from the headers, in no
// particular order.
func Pins() []uint8 {
	out := make([]uint8, 0, len(padOffsets))
	for p := range padOffsets {
		out = append(out, p)
	}
	return out
}

// SetGPIOStatus writes state to the pad of GPIO line pin.
func SetGPIOStatus(pin uint8, ctrl *control.Module, state uint32) bool {
	off, ok := PinOffset(pin)
	if !ok {
		return false
	}
	return ctrl.Set(off, state)
}

// GPIOStatus reads the pad of GPIO line pin.
func GPIOStatus(pin uint8, ctrl *control.Module) (uint32, bool) {
	off, ok := PinOffset(pin)
	if !ok {
		return 0, false
	}
	return ctrl.Get(off)
}
