package entropy

// rdrandStep32 executes one 32-bit rdrand instruction. ok mirrors the
// carry flag.
//
//go:noescape
func rdrandStep32() (v uint32, ok bool)

func rdrand32() (uint32, bool) {
	for range rdrandRetries {
		if v, ok := rdrandStep32(); ok {
			return v, true
		}
	}
	return 0, false
}

// On 32-bit targets a 64-bit value is assembled from two hardware
// draws.
func rdrandUint64() (uint64, bool) {
	upper, ok := rdrand32()
	if !ok {
		return 0, false
	}
	lower, ok := rdrand32()
	if !ok {
		return 0, false
	}
	return uint64(upper)<<32 | uint64(lower), true
}
