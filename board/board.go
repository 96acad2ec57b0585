// Package board assembles the AM335x peripherals of a BeagleBone into one
// value: the interrupt controller, the four GPIO banks, the control module
// and the console UART, each found through an address translator.
package board

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"

	"sitara/config"
	"sitara/control"
	"sitara/debug"
	"sitara/gpio"
	"sitara/intc"
	"sitara/memmap"
	"sitara/mmio"
	"sitara/uart"
)

var (
	ErrUnmapped  = errors.New("peripheral not mapped")
	ErrBadConfig = errors.New("bad board configuration")
	ErrNoPad     = errors.New("pin not routed to a header")
	ErrBadPin    = errors.New("no such GPIO")
	ErrPinBusy   = errors.New("pin already claimed")
	ErrNotOwned  = errors.New("pin not claimed with this direction")
)

// Board holds the peripherals. The fields are handles over the translated
// register blocks; Board itself keeps track of the pins it has claimed.
type Board struct {
	INTC    *intc.Controller
	Banks   [memmap.NumGPIO]*gpio.Bank
	Control *control.Module

	cfg         *config.Board
	tr          mmio.Translator
	consoleBase mmio.Block
	console     *uart.Operating

	outputs map[uint8]*gpio.OutputPin
	inputs  map[uint8]*gpio.InputPin
}

// New resolves every peripheral the board uses through tr. A nil cfg means
// config.Default().
func New(cfg *config.Board, tr mmio.Translator) (*Board, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	b := &Board{
		cfg:     cfg,
		tr:      tr,
		outputs: make(map[uint8]*gpio.OutputPin),
		inputs:  make(map[uint8]*gpio.InputPin),
	}

	irq, err := resolve(tr, "intc", memmap.IRQController)
	if err != nil {
		return nil, err
	}
	b.INTC = intc.NewController(irq)

	for i := range b.Banks {
		phys, _ := memmap.GPIO(i)
		blk, err := resolve(tr, "gpio"+debug.Itoa(i), phys)
		if err != nil {
			return nil, err
		}
		b.Banks[i] = gpio.NewBank(uint8(i), blk)
	}

	ctrl, err := resolve(tr, "control", memmap.Control)
	if err != nil {
		return nil, err
	}
	b.Control = control.New(ctrl)

	phys, _ := memmap.UART(cfg.ConsoleUART)
	b.consoleBase, err = resolve(tr, "uart"+debug.Itoa(cfg.ConsoleUART), phys)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func resolve(tr mmio.Translator, name string, p mmio.PhysicalAddress) (mmio.Block, error) {
	blk, ok := mmio.Resolve(tr, p)
	if !ok {
		return mmio.Block{}, fmt.Errorf("%s at %#x: %w", name, uint32(p), ErrUnmapped)
	}
	return blk, nil
}

// Config returns the configuration the board was built with.
func (b *Board) Config() *config.Board {
	return b.cfg
}

// Translator returns the translator the peripherals were resolved with.
func (b *Board) Translator() mmio.Translator {
	return b.tr
}

// BringUpConsole initializes the console UART with the configured line
// settings. With Debug set in the configuration, debug output is routed to
// it from then on.
func (b *Board) BringUpConsole() *uart.Operating {
	settings := uart.Settings{
		Divisor:     uart.Divisor(b.cfg.UARTClock, b.cfg.BaudRate),
		LineControl: b.cfg.LineControl,
	}
	op := uart.InitUnit(b.consoleBase, uint8(b.cfg.ConsoleUART), settings)
	b.console = op

	if b.cfg.Debug {
		debug.SetWriter(func(s string) {
			op.WriteString(s)
			op.WriteString("\n")
		})
		debug.SetEnabled(true)
		debug.Println("[BOARD] console on uart" + debug.Itoa(b.cfg.ConsoleUART) +
			" divisor=" + debug.Hex(uint32(settings.Divisor)))
	}
	return op
}

// Console returns the console UART, or nil before BringUpConsole.
func (b *Board) Console() drivers.UART {
	if b.console == nil {
		return nil
	}
	return b.console
}

// EnableModules clears DISABLEMODULE on every GPIO bank.
func (b *Board) EnableModules() {
	for _, bank := range b.Banks {
		bank.EnableModule()
	}
}

// ClaimConfigured claims every pin listed in the configuration. It stops at
// the first failure; pins claimed before it stay claimed.
func (b *Board) ClaimConfigured() error {
	for _, p := range b.cfg.Pins {
		pull := parsePull(p.Pull)
		if p.Output {
			out, err := b.ClaimOutput(p.GPIO)
			if err != nil {
				return err
			}
			if p.Initial {
				out.Set()
			} else {
				out.Clear()
			}
			continue
		}
		if _, err := b.ClaimInputPull(p.GPIO, pull); err != nil {
			return err
		}
	}
	return nil
}

func parsePull(s string) control.Pull {
	switch s {
	case "up":
		return control.PullUp
	case "down":
		return control.PullDown
	}
	return control.PullNone
}

var uartIRQ = [...]intc.Number{
	intc.UART0INT, intc.UART1INT, intc.UART2INT,
	intc.UART3INT, intc.UART4INT, intc.UART5INT,
}

var gpioIRQ = [memmap.NumGPIO][2]intc.Number{
	{intc.GPIOINT0A, intc.GPIOINT0B},
	{intc.GPIOINT1A, intc.GPIOINT1B},
	{intc.GPIOINT2A, intc.GPIOINT2B},
	{intc.GPIOINT3A, intc.GPIOINT3B},
}

// ConsoleIRQ returns the interrupt line of the console UART.
func (b *Board) ConsoleIRQ() intc.Line {
	return b.INTC.Line(uartIRQ[b.cfg.ConsoleUART])
}

// GPIOIRQ returns interrupt line A or B (second = true) of GPIO module bank.
func (b *Board) GPIOIRQ(bank int, second bool) (intc.Line, bool) {
	if bank < 0 || bank >= len(gpioIRQ) {
		return intc.Line{}, false
	}
	if second {
		return b.INTC.Line(gpioIRQ[bank][1]), true
	}
	return b.INTC.Line(gpioIRQ[bank][0]), true
}
