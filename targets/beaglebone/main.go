//go:build tinygo && arm

package main

import (
	"sitara/board"
	"sitara/config"
	"sitara/debug"
	"sitara/intc"
	"sitara/mmio"
)

// P9_12, GPIO1_28
const heartbeatPin = 60

func main() {
	// MMU off: physical addresses are used as they are
	b, err := board.New(config.Default(), mmio.Identity{})
	if err != nil {
		halt()
	}

	console := b.BringUpConsole()
	console.WriteString("sitara: console up\n")

	b.INTC.Reset()
	if err := b.INTC.WaitResetDone(1 << 16); err != nil {
		console.WriteString("sitara: intc reset timed out\n")
	}
	b.INTC.DisableThreshold()
	b.ConsoleIRQ().Disable()

	b.EnableModules()
	if err := b.ClaimConfigured(); err != nil {
		console.WriteString("sitara: " + err.Error() + "\n")
	}

	led, err := b.ClaimOutput(heartbeatPin)
	if err != nil {
		console.WriteString("sitara: heartbeat: " + err.Error() + "\n")
		halt()
	}

	for {
		c := console.Getc()
		switch c {
		case 'd':
			debug.SetWriter(func(s string) {
				console.WriteString(s + "\n")
			})
			debug.Dump()
		case 'i':
			b.INTC.DumpRawStatus(console)
			console.WriteString("active irq " + debug.Itoa(int(b.INTC.ActiveIRQ())) + "\n")
		case 'l':
			led.Switch()
		case 'p':
			if b.INTC.Line(intc.UART0INT).Pending() {
				console.WriteString("uart0 pending\n")
			}
		default:
			console.Putc(c)
		}
	}
}

func halt() {
	for {
	}
}
