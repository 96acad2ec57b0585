// Package debug carries the debug output and the post-mortem event ring used
// by the peripheral packages. Output goes through a writer supplied by the
// platform (UART, semihosting, a test buffer); nothing is printed until one
// is installed and output is enabled.
package debug

// Writer is a function type for writing debug messages
type Writer func(string)

// Event captures one hardware ownership event for post-mortem analysis
type Event struct {
	Kind   Kind   // Event kind
	Unit   uint8  // Peripheral instance (bank, port, controller)
	Value1 uint32 // Context-dependent value
	Value2 uint32 // Context-dependent value
}

// Kind identifies the type of an Event
type Kind uint8

// Event kinds
const (
	EvtNone         Kind = iota
	EvtPinClaim          // GPIO bit allocated (Value1=bit, Value2=1 for output)
	EvtPinRelease        // GPIO bit returned (Value1=bit)
	EvtPinDirection      // GPIO direction changed (Value1=bit, Value2=1 for output)
	EvtIRQEnable         // Interrupt line unmasked (Value1=number)
	EvtIRQDisable        // Interrupt line masked (Value1=number)
	EvtConfigEnter       // Serial port entered config mode (Value1=saved LCR)
	EvtConfigExit        // Serial port back in operating mode (Value1=restored LCR)
	EvtUARTInit          // Serial port brought up (Value1=divisor, Value2=LCR)
	EvtIRQReset          // Interrupt controller soft reset
)

func (k Kind) String() string {
	switch k {
	case EvtPinClaim:
		return "PIN_CLAIM"
	case EvtPinRelease:
		return "PIN_RELEASE"
	case EvtPinDirection:
		return "PIN_DIR"
	case EvtIRQEnable:
		return "IRQ_ENABLE"
	case EvtIRQDisable:
		return "IRQ_DISABLE"
	case EvtConfigEnter:
		return "CFG_ENTER"
	case EvtConfigExit:
		return "CFG_EXIT"
	case EvtUARTInit:
		return "UART_INIT"
	case EvtIRQReset:
		return "IRQ_RESET"
	}
	return "UNKNOWN"
}

const (
	RingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// output is the global debug print function (can be set by platform code)
	output Writer = func(s string) {} // No-op by default

	// enabled controls whether Println output is active
	enabled bool = false

	ring     [RingSize]Event
	ringHead uint8       // Next write position
	recordOn bool = true // Always capture events
)

// SetWriter sets the platform-specific debug output function
func SetWriter(w Writer) {
	output = w
}

// SetEnabled enables or disables debug output
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether debug output is enabled
func Enabled() bool {
	return enabled
}

// SetRecording turns event capture on or off
func SetRecording(on bool) {
	recordOn = on
}

// Println writes a debug message using the platform-specific writer
func Println(msg string) {
	if enabled && output != nil {
		output(msg)
	}
}

// Record captures an event in the ring buffer.
// It never blocks and does not allocate, so it is safe in interrupt context.
func Record(kind Kind, unit uint8, value1, value2 uint32) {
	if !recordOn {
		return
	}
	idx := ringHead
	ring[idx] = Event{
		Kind:   kind,
		Unit:   unit,
		Value1: value1,
		Value2: value2,
	}
	ringHead = (idx + 1) % RingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	out := make([]Event, 0, RingSize)
	start := ringHead
	for i := uint8(0); i < RingSize; i++ {
		evt := ring[(start+i)%RingSize]
		if evt.Kind == EvtNone {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// Dump outputs the event ring (call on fault or from a debug command)
func Dump() {
	if output == nil {
		return
	}

	output("[EVENT] === Event Ring Dump ===")
	for _, evt := range Events() {
		output("[EVENT] " + evt.Kind.String() +
			" unit=" + Itoa(int(evt.Unit)) +
			" v1=" + Hex(evt.Value1) +
			" v2=" + Hex(evt.Value2))
	}
	output("[EVENT] === End Dump ===")
}

// Clear clears the event ring
func Clear() {
	for i := range ring {
		ring[i] = Event{}
	}
	ringHead = 0
}
