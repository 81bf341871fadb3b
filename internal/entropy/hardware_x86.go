//go:build 386 || amd64

package entropy

import "golang.org/x/sys/cpu"

// Number of times the rdrand instruction is retried before a draw is
// reported as unavailable. Hardware under-run is transient; ten
// attempts is the vendor-recommended ceiling.
const rdrandRetries = 10

// Hardware is a capability token proving the rdrand instruction is
// available. Obtain one through TryNewHardware, or assert it with
// NewHardwareUnchecked on a CPU known to support the instruction.
type Hardware struct {
	_ [0]byte
}

// TryNewHardware checks the CPU feature flag once and returns a
// capability token when the rdrand instruction exists. It never
// panics; ok is false on CPUs lacking the feature.
func TryNewHardware() (hw Hardware, ok bool) {
	return Hardware{}, cpu.X86.HasRDRAND
}

// NewHardwareUnchecked returns a capability token without checking the
// CPU. Executing a draw on a CPU without rdrand faults the process.
func NewHardwareUnchecked() Hardware {
	return Hardware{}
}

// TryNextUint64 draws one 64-bit value from the hardware generator.
// ok is false when the generator stayed not-ready through all retries.
func (Hardware) TryNextUint64() (v uint64, ok bool) {
	return rdrandUint64()
}

// TryNextInt64 is the signed view of TryNextUint64.
func (h Hardware) TryNextInt64() (int64, bool) {
	v, ok := h.TryNextUint64()
	return int64(v), ok
}

// NextUint64 draws one 64-bit value, panicking if the hardware stayed
// not-ready through all retries. The caller asserted support by
// holding the token, so exhaustion here is fatal.
func (h Hardware) NextUint64() uint64 {
	v, ok := h.TryNextUint64()
	if !ok {
		panic("entropy: rdrand exhausted all retries")
	}
	return v
}

// NextInt64 is the signed view of NextUint64.
func (h Hardware) NextInt64() int64 {
	return int64(h.NextUint64())
}

// Entropy returns a function drawing from the hardware generator.
func (h Hardware) Entropy() func() int64 {
	return h.NextInt64
}
