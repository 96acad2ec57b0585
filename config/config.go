// Package config describes how a board is brought up: which UART carries
// the console, at what rate, and which header pins are claimed at start.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"sitara/uart"
)

// PinConfig is one GPIO line claimed at bring-up.
type PinConfig struct {
	GPIO    uint8  // Global GPIO number (module*32 + bit)
	Output  bool   // Claim as output, otherwise input
	Pull    string // "up", "down" or "none" (default)
	Initial bool   // Level driven right after an output is claimed
}

// Board is the complete bring-up configuration.
type Board struct {
	ConsoleUART int    // UART instance, 0..5
	BaudRate    uint32 // Console baud rate
	UARTClock   uint32 // UART functional clock in Hz
	LineControl uint32 // LCR value, 0x03 for 8N1
	Debug       bool   // Send debug output to the console
	Pins        []PinConfig
}

var ErrInvalid = errors.New("invalid board configuration")

const (
	numUART     = 6
	maxGPIO     = 127
	lcrSentinel = 0xBF
)

// LoadBoard parses a JSON configuration and fills in defaults.
func LoadBoard(jsonData []byte) (*Board, error) {
	var cfg Board

	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(cfg *Board) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	if cfg.UARTClock == 0 {
		cfg.UARTClock = 48000000 // PER_CLKOUTM2 / 4
	}
	if cfg.LineControl == 0 {
		cfg.LineControl = 0x03 // 8N1
	}
	for i := range cfg.Pins {
		if cfg.Pins[i].Pull == "" {
			cfg.Pins[i].Pull = "none"
		}
	}
}

// Default returns the configuration of a stock BeagleBone: console on UART0
// at 115200 8N1 and no pins claimed.
func Default() *Board {
	cfg := &Board{}
	applyDefaults(cfg)
	return cfg
}

// Divisor returns the baud rate divisor the configuration asks for.
func (b *Board) Divisor() uint16 {
	return uart.Divisor(b.UARTClock, b.BaudRate)
}

// Validate checks the values applyDefaults cannot repair. A Board that never
// went through applyDefaults fails on its zero baud rate.
func (b *Board) Validate() error {
	if b.ConsoleUART < 0 || b.ConsoleUART >= numUART {
		return fmt.Errorf("%w: console UART %d does not exist", ErrInvalid, b.ConsoleUART)
	}
	if b.BaudRate == 0 || b.UARTClock == 0 {
		return fmt.Errorf("%w: baud rate and UART clock must be set", ErrInvalid)
	}
	if _, ok := uart.ValidDivisor(b.UARTClock, b.BaudRate); !ok {
		return fmt.Errorf("%w: %d baud cannot be reached from a %d Hz clock", ErrInvalid, b.BaudRate, b.UARTClock)
	}
	if b.LineControl == lcrSentinel {
		return fmt.Errorf("%w: line control %#x selects config mode", ErrInvalid, b.LineControl)
	}

	seen := make(map[uint8]bool, len(b.Pins))
	for _, p := range b.Pins {
		if p.GPIO > maxGPIO {
			return fmt.Errorf("%w: GPIO %d out of range", ErrInvalid, p.GPIO)
		}
		if seen[p.GPIO] {
			return fmt.Errorf("%w: GPIO %d listed twice", ErrInvalid, p.GPIO)
		}
		seen[p.GPIO] = true

		switch p.Pull {
		case "", "none", "up", "down":
		default:
			return fmt.Errorf("%w: GPIO %d: unknown pull %q", ErrInvalid, p.GPIO, p.Pull)
		}
	}
	return nil
}
