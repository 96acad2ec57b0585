package console

import (
	"bytes"
	"errors"
	"testing"
)

func TestInputByte(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{'\r', '\n'},
		{'\n', '\n'},
		{'A', 'A'},
		{0, 0},
	}
	for _, tt := range tests {
		if got := InputByte(tt.in); got != tt.want {
			t.Errorf("InputByte(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\nb", "a\r\nb"},
		{"\n\n", "\r\n\r\n"},
		{"done\r\n", "done\r\r\n"},
	}
	for _, tt := range tests {
		var out []byte
		Expand([]byte(tt.in), func(c byte) { out = append(out, c) })
		if string(out) != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, out, tt.want)
		}
		if got := AppendExpanded(nil, []byte(tt.in)); string(got) != tt.want {
			t.Errorf("AppendExpanded(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	n, err := w.Write([]byte("hello\nworld\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 12 {
		t.Errorf("Expected 12 bytes reported, got %d", n)
	}
	if got := buf.String(); got != "hello\r\nworld\r\n" {
		t.Errorf("Unexpected output %q", got)
	}
}

type failingWriter struct{}

var errBroken = errors.New("broken")

func (failingWriter) Write(p []byte) (int, error) { return 0, errBroken }

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{})
	if _, err := w.Write([]byte("x\n")); !errors.Is(err, errBroken) {
		t.Errorf("Expected errBroken, got %v", err)
	}
}
