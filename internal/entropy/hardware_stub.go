//go:build !386 && !amd64

package entropy

// Hardware is a capability token for the x86 rdrand instruction. On
// this architecture the instruction does not exist, so the token can
// never be obtained through TryNewHardware and every draw reports
// unavailable.
type Hardware struct {
	_ [0]byte
}

// TryNewHardware reports that no hardware generator is available.
func TryNewHardware() (hw Hardware, ok bool) {
	return Hardware{}, false
}

// NewHardwareUnchecked returns a token whose draws always report
// unavailable.
func NewHardwareUnchecked() Hardware {
	return Hardware{}
}

// TryNextUint64 always reports unavailable.
func (Hardware) TryNextUint64() (v uint64, ok bool) {
	return 0, false
}

// TryNextInt64 always reports unavailable.
func (Hardware) TryNextInt64() (int64, bool) {
	return 0, false
}

// NextUint64 panics: holding a token off x86 is itself the caller's
// false assertion.
func (Hardware) NextUint64() uint64 {
	panic("entropy: rdrand is not available on this architecture")
}

// NextInt64 panics like NextUint64.
func (h Hardware) NextInt64() int64 {
	return int64(h.NextUint64())
}

// Entropy returns a function that panics when called, matching
// NextInt64.
func (h Hardware) Entropy() func() int64 {
	return h.NextInt64
}
