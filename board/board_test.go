package board

import (
	"errors"
	"strings"
	"testing"

	"sitara/config"
	"sitara/control"
	"sitara/debug"
	"sitara/intc"
	"sitara/memmap"
	"sitara/mmio"
)

func newTestBoard(t *testing.T, cfg *config.Board) (*Board, *mmio.Sim) {
	t.Helper()
	sim := mmio.NewSim(memmap.Devices[:]...)
	b, err := New(cfg, sim)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b, sim
}

func page(t *testing.T, sim *mmio.Sim, p mmio.PhysicalAddress) mmio.Block {
	t.Helper()
	blk, ok := sim.Block(p)
	if !ok {
		t.Fatalf("%#x not mapped", uint32(p))
	}
	return blk
}

func TestNewUnmapped(t *testing.T) {
	sim := mmio.NewSim(0x44) // GPIO1..3 and the INTC live in 0x48
	_, err := New(nil, sim)
	if !errors.Is(err, ErrUnmapped) {
		t.Errorf("Expected ErrUnmapped, got %v", err)
	}
}

func TestNewBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ConsoleUART = 9
	_, err := New(cfg, mmio.NewSim())
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("Expected ErrBadConfig, got %v", err)
	}
}

func TestBringUpConsole(t *testing.T) {
	b, sim := newTestBoard(t, nil)

	op := b.BringUpConsole()
	op.Putc('A')

	regs := page(t, sim, memmap.UART0)
	if got := regs.Peek(0x00); got != 0x41 {
		t.Errorf("DATA = %#x, want 0x41", got)
	}
	if got := regs.Peek(0x0C); got != 0x03 {
		t.Errorf("LCR = %#x, want 0x03", got)
	}
	if b.Console() == nil {
		t.Error("Console() should be set after bring-up")
	}
}

func TestConsoleBeforeBringUp(t *testing.T) {
	b, _ := newTestBoard(t, nil)
	if b.Console() != nil {
		t.Error("Console() should be nil before bring-up")
	}
}

func TestConsoleOnOtherUART(t *testing.T) {
	cfg := config.Default()
	cfg.ConsoleUART = 2
	b, sim := newTestBoard(t, cfg)

	b.BringUpConsole().Putc('z')

	if got := page(t, sim, memmap.UART2).Peek(0x00); got != 'z' {
		t.Errorf("UART2 DATA = %#x", got)
	}
	if got := page(t, sim, memmap.UART0).Peek(0x00); got != 0 {
		t.Errorf("UART0 was touched: %#x", got)
	}
	if got := b.ConsoleIRQ().Number(); got != intc.UART2INT {
		t.Errorf("ConsoleIRQ = %d", got)
	}
}

func TestDebugGoesToConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	b, sim := newTestBoard(t, cfg)
	defer func() {
		debug.SetEnabled(false)
		debug.SetWriter(func(string) {})
	}()

	data := page(t, sim, memmap.UART0).Base()
	rec := mmio.Record()
	b.BringUpConsole()
	rec.Stop()

	var sb strings.Builder
	for _, v := range rec.WritesTo(data) {
		sb.WriteByte(byte(v))
	}
	if !strings.Contains(sb.String(), "[BOARD] console on uart0") {
		t.Errorf("Debug output missing, DATA saw %q", sb.String())
	}
}

func TestClaimOutput(t *testing.T) {
	b, sim := newTestBoard(t, nil)

	// GPIO1_28, P9_12
	p, err := b.ClaimOutput(60)
	if err != nil {
		t.Fatalf("ClaimOutput failed: %v", err)
	}
	if p.Bit() != 28 {
		t.Errorf("Expected bit 28, got %d", p.Bit())
	}
	if b.Banks[1].Owned() != 1<<28 {
		t.Errorf("Bank 1 mask = %#x", b.Banks[1].Owned())
	}

	pad := page(t, sim, memmap.Control).Peek(control.PadOffset + 0x078)
	if pad != 0x0F {
		t.Errorf("Pad = %#x, want 0x0f", pad)
	}

	p.Set()
	if got := page(t, sim, memmap.GPIO1).Peek(0x194); got != 1<<28 {
		t.Errorf("SETDATAOUT = %#x", got)
	}
}

func TestClaimErrors(t *testing.T) {
	b, _ := newTestBoard(t, nil)
	if _, err := b.ClaimInput(60); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		gpio uint8
		want error
	}{
		{"busy", 60, ErrPinBusy},
		{"no pad", 0, ErrNoPad},
		{"range", 128, ErrBadPin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.ClaimOutput(tt.gpio)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBusyClaimKeepsPad(t *testing.T) {
	b, sim := newTestBoard(t, nil)
	if _, err := b.ClaimInputPull(60, control.PullUp); err != nil {
		t.Fatal(err)
	}
	ctrl := page(t, sim, memmap.Control)
	before := ctrl.Peek(control.PadOffset + 0x078)

	if _, err := b.ClaimOutput(60); !errors.Is(err, ErrPinBusy) {
		t.Fatalf("Expected ErrPinBusy, got %v", err)
	}
	if after := ctrl.Peek(control.PadOffset + 0x078); after != before {
		t.Errorf("Pad changed from %#x to %#x", before, after)
	}
}

func TestRelease(t *testing.T) {
	b, _ := newTestBoard(t, nil)
	p, _ := b.ClaimOutput(60)

	if err := b.Release(60); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if p.Live() {
		t.Error("Handle should be retired")
	}
	if err := b.Release(60); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Expected ErrNotOwned, got %v", err)
	}
	if _, err := b.ClaimInput(60); err != nil {
		t.Errorf("Reclaim failed: %v", err)
	}
}

func TestGPIODriver(t *testing.T) {
	b, sim := newTestBoard(t, nil)
	var drv GPIODriver = b

	if err := drv.ConfigureOutput(60); err != nil {
		t.Fatal(err)
	}
	if err := drv.ConfigureInputPullUp(48); err != nil {
		t.Fatal(err)
	}

	if err := drv.SetPin(60, true); err != nil {
		t.Fatal(err)
	}
	if got := page(t, sim, memmap.GPIO1).Peek(0x194); got != 1<<28 {
		t.Errorf("SETDATAOUT = %#x", got)
	}

	if err := drv.SetPin(48, true); !errors.Is(err, ErrNotOwned) {
		t.Errorf("SetPin on an input: %v", err)
	}
	if _, err := drv.GetPin(61); !errors.Is(err, ErrNotOwned) {
		t.Errorf("GetPin on an unclaimed pin: %v", err)
	}
	if err := drv.ConfigureOutput(200); !errors.Is(err, ErrBadPin) {
		t.Errorf("ConfigureOutput(200): %v", err)
	}

	page(t, sim, memmap.GPIO1).Poke(0x138, 1<<16) // GPIO1_16 = 48
	if !drv.ReadPin(48) {
		t.Error("Pin 48 should read high")
	}
}

func TestClaimConfigured(t *testing.T) {
	cfg, err := config.LoadBoard([]byte(`{"Pins": [
		{"GPIO": 60, "Output": true, "Initial": true},
		{"GPIO": 48, "Pull": "down"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	b, sim := newTestBoard(t, cfg)

	if err := b.ClaimConfigured(); err != nil {
		t.Fatalf("ClaimConfigured failed: %v", err)
	}
	if _, ok := b.Output(60); !ok {
		t.Error("60 should be an output")
	}
	if _, ok := b.Input(48); !ok {
		t.Error("48 should be an input")
	}
	if got := page(t, sim, memmap.GPIO1).Peek(0x194); got != 1<<28 {
		t.Errorf("Initial level not driven, SETDATAOUT = %#x", got)
	}
	if pad := page(t, sim, memmap.Control).Peek(control.PadOffset + 0x040); pad != 0x27 {
		t.Errorf("Pad of 48 = %#x, want 0x27", pad)
	}

	if err := b.ClaimConfigured(); !errors.Is(err, ErrPinBusy) {
		t.Errorf("Second ClaimConfigured: %v", err)
	}
}

func TestGPIOIRQ(t *testing.T) {
	b, _ := newTestBoard(t, nil)
	l, ok := b.GPIOIRQ(1, false)
	if !ok || l.Number() != intc.GPIOINT1A {
		t.Errorf("GPIOIRQ(1) = %d, %v", l.Number(), ok)
	}
	if _, ok := b.GPIOIRQ(4, false); ok {
		t.Error("GPIOIRQ(4) should not exist")
	}
}

func TestNewRejectsUndefaultedConfig(t *testing.T) {
	_, err := New(&config.Board{}, mmio.NewSim())
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("Expected ErrBadConfig, got %v", err)
	}
}

func TestBankLevelConversionRetiresBoardHandle(t *testing.T) {
	b, _ := newTestBoard(t, nil)

	p, err := b.ClaimOutput(60)
	if err != nil {
		t.Fatal(err)
	}
	in, ok := b.Banks[1].ToInput(p)
	if !ok {
		t.Fatal("ToInput failed")
	}

	if err := b.SetPin(60, true); !errors.Is(err, ErrNotOwned) {
		t.Errorf("SetPin on a converted pin: %v", err)
	}
	if _, err := b.GetPin(60); !errors.Is(err, ErrNotOwned) {
		t.Errorf("GetPin on a converted pin: %v", err)
	}
	if b.ReadPin(60) {
		t.Error("ReadPin on a converted pin should read false")
	}
	if err := b.Release(60); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Release of a converted pin: %v", err)
	}
	if !in.Live() || b.Banks[1].Owned() != 1<<28 {
		t.Error("Bank level handle must keep the pin")
	}
}

func TestReleaseReportsBankRefusal(t *testing.T) {
	b, _ := newTestBoard(t, nil)

	p, _ := b.ClaimInput(48)
	if !b.Banks[1].ReleaseInput(p) {
		t.Fatal("Bank release failed")
	}
	if err := b.Release(48); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Expected ErrNotOwned, got %v", err)
	}
}
