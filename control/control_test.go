package control

import (
	"testing"

	"sitara/mmio"
)

func TestSetGet(t *testing.T) {
	mem := mmio.NewBacking(BlockSize)
	m := New(mem)

	tests := []struct {
		offset uint32
		ok     bool
	}{
		{0x000, true},
		{0x018, true},
		{0x1B4, true},
		{4 * (NumPads - 1), true},
		{4 * NumPads, false},
		{0x1000, false},
		{0x002, false},
	}

	for _, tt := range tests {
		if got := m.Set(tt.offset, 0x27); got != tt.ok {
			t.Errorf("Set(%#x) = %v, want %v", tt.offset, got, tt.ok)
			continue
		}
		v, ok := m.Get(tt.offset)
		if ok != tt.ok {
			t.Errorf("Get(%#x) ok = %v", tt.offset, ok)
		}
		if tt.ok {
			if v != 0x27 {
				t.Errorf("Get(%#x) = %#x", tt.offset, v)
			}
			if raw := mem.Peek(uintptr(PadOffset + tt.offset)); raw != 0x27 {
				t.Errorf("Register at %#x holds %#x", PadOffset+tt.offset, raw)
			}
		}
	}
}

func TestRejectedSetWritesNothing(t *testing.T) {
	m := New(mmio.NewBacking(BlockSize))

	rec := mmio.Record()
	m.Set(4*NumPads, 1)
	rec.Stop()

	if len(rec.Accesses()) != 0 {
		t.Error("Out of range Set touched a register")
	}
}

func TestPadConfig(t *testing.T) {
	tests := []struct {
		cfg  PadConfig
		want uint32
	}{
		{PadConfig{Mode: ModeGPIO, Pull: PullNone}, 0x0F},
		{PadConfig{Mode: ModeGPIO, Pull: PullDown, Receiver: true}, 0x27},
		{PadConfig{Mode: ModeGPIO, Pull: PullUp, Receiver: true}, 0x37},
		{PadConfig{Mode: 0, Pull: PullUp, SlowSlew: true}, 0x50},
	}

	for _, tt := range tests {
		if got := tt.cfg.Encode(); got != tt.want {
			t.Errorf("Encode(%+v) = %#x, want %#x", tt.cfg, got, tt.want)
		}
		if back := DecodePad(tt.want); back != tt.cfg {
			t.Errorf("DecodePad(%#x) = %+v, want %+v", tt.want, back, tt.cfg)
		}
	}
}
