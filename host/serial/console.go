package serial

import (
	"errors"
	"io"

	"sitara/console"
)

// ErrNoData is returned by ReadChar when the port read timed out.
var ErrNoData = errors.New("no data received")

// Console speaks the board console's text conventions over a Port: LF is
// sent as CR LF and a received CR reads as LF.
type Console struct {
	port Port
	out  io.Writer
	one  [1]byte
}

var _ console.Console = (*Console)(nil)

// NewConsole wraps port.
func NewConsole(port Port) *Console {
	return &Console{port: port, out: console.NewWriter(port)}
}

// Write sends p with every LF expanded to CR LF.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// ReadChar reads one character. It returns ErrNoData when the port's read
// timeout expires first.
func (c *Console) ReadChar() (byte, error) {
	n, err := c.port.Read(c.one[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNoData
	}
	return console.InputByte(c.one[0]), nil
}

// Getc blocks until a character arrives. It returns 0 once the port fails.
func (c *Console) Getc() byte {
	for {
		ch, err := c.ReadChar()
		if err == nil {
			return ch
		}
		if !errors.Is(err, ErrNoData) {
			return 0
		}
	}
}

// ReadLine reads up to and excluding the next LF.
func (c *Console) ReadLine() (string, error) {
	var line []byte
	for {
		ch, err := c.ReadChar()
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return string(line), err
		}
		if ch == '\n' {
			return string(line), nil
		}
		line = append(line, ch)
	}
}

// Close closes the underlying port.
func (c *Console) Close() error {
	return c.port.Close()
}
