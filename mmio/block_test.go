package mmio

import (
	"testing"
	"unsafe"
)

type testLayout struct {
	A Register32 // 0x00
	_ [2]uint32
	B Register32 // 0x0C
}

func TestBackingRegisterAddresses(t *testing.T) {
	b := NewBacking(0x20)

	if off := uintptr(unsafe.Pointer(b.Reg(0x0C))) - b.Base(); off != 0x0C {
		t.Errorf("Reg(0x0C) landed at offset %#x", off)
	}

	regs := Overlay[testLayout](b)
	regs.B.Set(0xCAFE)
	if got := b.Peek(0x0C); got != 0xCAFE {
		t.Errorf("Expected 0xCAFE at 0x0C, got %#x", got)
	}

	b.Poke(0x00, 0x55)
	if got := regs.A.Get(); got != 0x55 {
		t.Errorf("Expected 0x55 in A, got %#x", got)
	}
}

func TestSubBlockSharesMemory(t *testing.T) {
	b := NewBacking(0x100)
	sub := b.Sub(0x80)

	if sub.Base() != b.Base()+0x80 {
		t.Fatalf("Sub base %#x, want %#x", sub.Base(), b.Base()+0x80)
	}

	sub.Reg(0x04).Set(7)
	if got := b.Peek(0x84); got != 7 {
		t.Errorf("Expected 7 at 0x84, got %d", got)
	}
	if got := sub.Peek(0x04); got != 7 {
		t.Errorf("Expected 7 through the sub block, got %d", got)
	}
}

func TestBackingBoundsCheck(t *testing.T) {
	tests := []struct {
		name   string
		offset uintptr
	}{
		{"past end", 0x10},
		{"unaligned", 0x02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBacking(0x10)
			defer func() {
				if recover() == nil {
					t.Errorf("Reg(%#x) did not panic", tt.offset)
				}
			}()
			b.Reg(tt.offset)
		})
	}
}

func TestOverlayTooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Overlay on a short block did not panic")
		}
	}()
	Overlay[testLayout](NewBacking(0x08))
}

func TestRegisterBitHelpers(t *testing.T) {
	b := NewBacking(4)
	r := b.Reg(0)

	r.Set(0xF0)
	r.SetBits(0x01)
	r.ClearBits(0x10)
	if got := r.Get(); got != 0xE1 {
		t.Errorf("Expected 0xE1, got %#x", got)
	}
	if !r.HasBits(0x01) || r.HasBits(0x10) {
		t.Errorf("HasBits wrong for %#x", r.Get())
	}

	r.ReplaceBits(0x3, 0x7, 4)
	if got := r.Get(); got != 0x81|0x30 {
		t.Errorf("Expected %#x after ReplaceBits, got %#x", 0x81|0x30, got)
	}
}

func TestRecorder(t *testing.T) {
	b := NewBacking(0x10)
	rec := Record()
	b.Reg(0x4).Set(1)
	b.Reg(0x4).Get()
	b.Reg(0x8).Set(2)
	b.Reg(0x4).Set(3)
	rec.Stop()

	b.Reg(0x4).Set(99) // not recorded

	if got := len(rec.Accesses()); got != 4 {
		t.Fatalf("Expected 4 accesses, got %d", got)
	}
	if got := len(rec.Writes()); got != 3 {
		t.Errorf("Expected 3 writes, got %d", got)
	}
	w := rec.WritesTo(b.Base() + 0x4)
	if len(w) != 2 || w[0] != 1 || w[1] != 3 {
		t.Errorf("Unexpected writes to 0x4: %v", w)
	}
}
