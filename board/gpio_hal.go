package board

import (
	"fmt"

	"sitara/control"
)

// GPIOPin identifies a GPIO line by its global number (module*32 + bit).
type GPIOPin uint32

// GPIODriver is the pin-number based GPIO interface for code that does not
// want to hold typed handles.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	// Returns error if pin is invalid or already in use
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// ConfigureInputPullDown configures a pin as a digital input with pull-down resistor
	ConfigureInputPullDown(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// ReadPin reads the current pin state (alias for GetPin for convenience)
	ReadPin(pin GPIOPin) bool
}

var _ GPIODriver = (*Board)(nil)

func pinNumber(pin GPIOPin) (uint8, error) {
	if pin > maxGPIO {
		return 0, fmt.Errorf("gpio %d: %w", pin, ErrBadPin)
	}
	return uint8(pin), nil
}

func (b *Board) ConfigureOutput(pin GPIOPin) error {
	n, err := pinNumber(pin)
	if err != nil {
		return err
	}
	_, err = b.ClaimOutput(n)
	return err
}

func (b *Board) ConfigureInputPullUp(pin GPIOPin) error {
	return b.configureInput(pin, control.PullUp)
}

func (b *Board) ConfigureInputPullDown(pin GPIOPin) error {
	return b.configureInput(pin, control.PullDown)
}

func (b *Board) configureInput(pin GPIOPin, pull control.Pull) error {
	n, err := pinNumber(pin)
	if err != nil {
		return err
	}
	_, err = b.ClaimInputPull(n, pull)
	return err
}

// SetPin drives an output claimed through ConfigureOutput or ClaimOutput.
func (b *Board) SetPin(pin GPIOPin, value bool) error {
	n, err := pinNumber(pin)
	if err != nil {
		return err
	}
	p, ok := b.Output(n)
	if !ok {
		return fmt.Errorf("gpio %d: %w", n, ErrNotOwned)
	}
	if value {
		p.Set()
	} else {
		p.Clear()
	}
	return nil
}

// GetPin reads a claimed pin: DATAIN for inputs, DATAOUT for outputs.
func (b *Board) GetPin(pin GPIOPin) (bool, error) {
	n, err := pinNumber(pin)
	if err != nil {
		return false, err
	}
	if p, ok := b.Input(n); ok {
		return p.Read(), nil
	}
	if p, ok := b.Output(n); ok {
		return p.Read(), nil
	}
	return false, fmt.Errorf("gpio %d: %w", n, ErrNotOwned)
}

func (b *Board) ReadPin(pin GPIOPin) bool {
	v, _ := b.GetPin(pin)
	return v
}
