//go:build !tinygo

package mmio

import "unsafe"

// Op is the kind of a traced register access.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}

// Access is one register access seen by a Tracer.
type Access struct {
	Op    Op
	Addr  uintptr
	Value uint32
}

// Tracer observes register accesses. Only the host build has one; on
// hardware there is nothing to hook.
type Tracer func(Access)

var tracer Tracer

// SetTracer installs t and returns the previous tracer. A nil t disables
// tracing.
func SetTracer(t Tracer) Tracer {
	prev := tracer
	tracer = t
	return prev
}

func trace(op Op, r *Register32, value uint32) {
	if tracer != nil {
		tracer(Access{Op: op, Addr: uintptr(unsafe.Pointer(r)), Value: value})
	}
}

// Recorder collects every register access while it is installed.
type Recorder struct {
	accesses []Access
	prev     Tracer
}

// Record installs a new Recorder as the tracer. Call Stop to restore the
// previous one.
func Record() *Recorder {
	r := &Recorder{}
	r.prev = SetTracer(r.add)
	return r
}

func (r *Recorder) add(a Access) {
	r.accesses = append(r.accesses, a)
}

// Stop uninstalls the recorder. The collected accesses stay available.
func (r *Recorder) Stop() {
	SetTracer(r.prev)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.accesses = r.accesses[:0]
}

// Accesses returns all recorded accesses in program order.
func (r *Recorder) Accesses() []Access {
	return r.accesses
}

// Writes returns the recorded writes in program order.
func (r *Recorder) Writes() []Access {
	var out []Access
	for _, a := range r.accesses {
		if a.Op == OpWrite {
			out = append(out, a)
		}
	}
	return out
}

// WritesTo returns the values written to addr in program order.
func (r *Recorder) WritesTo(addr uintptr) []uint32 {
	var out []uint32
	for _, a := range r.accesses {
		if a.Op == OpWrite && a.Addr == addr {
			out = append(out, a.Value)
		}
	}
	return out
}
