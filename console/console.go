// Package console holds the text conventions shared by every serial
// console: input arrives with CR line endings and output is sent with CR LF.
package console

import "io"

// Console is a text device: a blocking byte source and a writer.
type Console interface {
	io.Writer
	// Getc blocks until a byte arrives. A CR is returned as LF.
	Getc() byte
}

// InputByte maps a received byte to the character the caller sees.
func InputByte(c byte) byte {
	if c == '\r' {
		return '\n'
	}
	return c
}

// Expand calls put for every byte of p, sending LF as CR LF.
func Expand(p []byte, put func(byte)) {
	for _, c := range p {
		if c == '\n' {
			put('\r')
		}
		put(c)
	}
}

// AppendExpanded appends p to dst with every LF expanded to CR LF.
func AppendExpanded(dst, p []byte) []byte {
	for _, c := range p {
		if c == '\n' {
			dst = append(dst, '\r')
		}
		dst = append(dst, c)
	}
	return dst
}

type writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a writer that expands LF to CR LF before passing the
// data on to w. The byte count it reports refers to the unexpanded input.
func NewWriter(w io.Writer) io.Writer {
	return &writer{w: w}
}

func (t *writer) Write(p []byte) (int, error) {
	t.buf = AppendExpanded(t.buf[:0], p)
	if _, err := t.w.Write(t.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
