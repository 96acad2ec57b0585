//go:build tinygo

package mmio

import "device/arm"

func spin() {
	arm.Asm("nop")
}
