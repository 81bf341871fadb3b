package entropy

// rdrandStep executes one rdrand instruction. ok mirrors the carry
// flag: false means the generator was not ready.
//
//go:noescape
func rdrandStep() (v uint64, ok bool)

func rdrandUint64() (uint64, bool) {
	for range rdrandRetries {
		if v, ok := rdrandStep(); ok {
			return v, true
		}
	}
	return 0, false
}
