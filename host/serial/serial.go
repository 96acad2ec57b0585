// Package serial connects the host to a board's console UART.
package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Parity of the character format.
type Parity byte

const (
	ParityNone Parity = 'N'
	ParityOdd  Parity = 'O'
	ParityEven Parity = 'E'
)

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the board console
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int

	// Character format
	DataBits int
	Parity   Parity
	StopBits int
}

// DefaultConfig returns the configuration of a stock board console: 115200
// baud 8N1.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100, // 100ms read timeout
		DataBits:    8,
		Parity:      ParityNone,
		StopBits:    1,
	}
}

// LCR bitfields
const (
	lcrCharLenMask = 0x3
	lcrNbStop      = 1 << 2
	lcrParityEn    = 1 << 3
	lcrParityType1 = 1 << 4 // 1 = even
)

// ConfigFromLineControl returns the host side configuration matching a UART
// programmed with the line control value lcr.
func ConfigFromLineControl(device string, baud int, lcr uint32) *Config {
	cfg := DefaultConfig(device)
	cfg.Baud = baud
	cfg.DataBits = 5 + int(lcr&lcrCharLenMask)

	cfg.StopBits = 1
	if lcr&lcrNbStop != 0 {
		// 1.5 stop bits for 5 bit characters, 2 otherwise
		cfg.StopBits = 2
	}

	switch {
	case lcr&lcrParityEn == 0:
		cfg.Parity = ParityNone
	case lcr&lcrParityType1 != 0:
		cfg.Parity = ParityEven
	default:
		cfg.Parity = ParityOdd
	}
	return cfg
}
