package board

import (
	"fmt"

	"sitara/bsp/beaglebone"
	"sitara/control"
	"sitara/gpio"
)

const maxGPIO = 127

func split(n uint8) (bank, bit uint8) {
	return n / 32, n % 32
}

// lookup finds the pad and bank of GPIO line n and checks the line is free.
// It touches no register.
func (b *Board) lookup(n uint8) (uint32, *gpio.Bank, uint8, error) {
	if n > maxGPIO {
		return 0, nil, 0, fmt.Errorf("gpio %d: %w", n, ErrBadPin)
	}
	pad, ok := beaglebone.PinOffset(n)
	if !ok {
		return 0, nil, 0, fmt.Errorf("gpio %d: %w", n, ErrNoPad)
	}
	bankIdx, bit := split(n)
	bank := b.Banks[bankIdx]
	if bank.Owned()&(1<<bit) != 0 {
		return 0, nil, 0, fmt.Errorf("gpio %d: %w", n, ErrPinBusy)
	}
	return pad, bank, bit, nil
}

// ClaimOutput routes GPIO line n to its pad and claims it as an output.
func (b *Board) ClaimOutput(n uint8) (*gpio.OutputPin, error) {
	pad, bank, bit, err := b.lookup(n)
	if err != nil {
		return nil, err
	}
	b.Control.Set(pad, control.PadConfig{Mode: control.ModeGPIO, Pull: control.PullNone}.Encode())

	p, ok := bank.AllocateAsOutput(bit)
	if !ok {
		return nil, fmt.Errorf("gpio %d: %w", n, ErrPinBusy)
	}
	b.outputs[n] = p
	return p, nil
}

// ClaimInput routes GPIO line n to its pad, receiver on and no pull, and
// claims it as an input.
func (b *Board) ClaimInput(n uint8) (*gpio.InputPin, error) {
	return b.ClaimInputPull(n, control.PullNone)
}

// ClaimInputPull is ClaimInput with the given pull resistor.
func (b *Board) ClaimInputPull(n uint8, pull control.Pull) (*gpio.InputPin, error) {
	pad, bank, bit, err := b.lookup(n)
	if err != nil {
		return nil, err
	}
	b.Control.Set(pad, control.PadConfig{Mode: control.ModeGPIO, Pull: pull, Receiver: true}.Encode())

	p, ok := bank.AllocateAsInput(bit)
	if !ok {
		return nil, fmt.Errorf("gpio %d: %w", n, ErrPinBusy)
	}
	b.inputs[n] = p
	return p, nil
}

// Release gives GPIO line n back to its bank. The handle returned by the
// claim is retired.
func (b *Board) Release(n uint8) error {
	if n > maxGPIO {
		return fmt.Errorf("gpio %d: %w", n, ErrBadPin)
	}
	bankIdx, _ := split(n)
	bank := b.Banks[bankIdx]

	released := false
	if p, ok := b.Output(n); ok {
		released = bank.ReleaseOutput(p)
		delete(b.outputs, n)
	} else if p, ok := b.Input(n); ok {
		released = bank.ReleaseInput(p)
		delete(b.inputs, n)
	}
	if !released {
		return fmt.Errorf("gpio %d: %w", n, ErrNotOwned)
	}
	return nil
}

// Output returns the live output handle of line n. A handle retired behind
// the board's back, by a direction change on the bank for instance, is
// forgotten.
func (b *Board) Output(n uint8) (*gpio.OutputPin, bool) {
	p, ok := b.outputs[n]
	if ok && !p.Live() {
		delete(b.outputs, n)
		return nil, false
	}
	return p, ok
}

// Input returns the live input handle of line n.
func (b *Board) Input(n uint8) (*gpio.InputPin, bool) {
	p, ok := b.inputs[n]
	if ok && !p.Live() {
		delete(b.inputs, n)
		return nil, false
	}
	return p, ok
}
