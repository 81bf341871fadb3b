// Package javarand implements the 48-bit linear congruential generator
// used by the java.util.Random class, bit for bit.
//
// # Determinism
//
// For any fixed seed the whole future output sequence is a pure
// function of that seed: two generators constructed with the same seed
// produce identical sequences call for call, across platforms and
// releases. Every derived draw (bounded integers, ranged longs,
// floats, doubles, booleans, byte fills, Gaussian deviates) follows
// the reference algorithm exactly, including its rejection loops and
// overflow-sensitive bit tricks. The one documented exception is
// NextGaussian, whose low bits depend on the compiled-in mathx
// strategy (see that package).
//
// # Concurrency
//
// A Random is single-owner mutable state. It is not safe for
// concurrent use; callers wanting per-goroutine independence hold one
// instance per goroutine or wrap access in their own lock.
package javarand

import (
	"github.com/herabit/jrand/internal/entropy"
)

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = 1<<48 - 1

	floatUnit  float32 = 0x1p-24
	doubleUnit float64 = 0x1p-53
)

// Random is a deterministic pseudorandom number generator replicating
// java.util.Random. The seed always occupies its low 48 bits; the
// optional pending value is the cached second half of a Gaussian pair.
type Random struct {
	seed            int64
	pendingGaussian *float64
}

// WithSeed creates a generator from an explicit seed. The seed is
// scrambled (xor with the multiplier, masked to 48 bits) before use,
// exactly as the reference does.
func WithSeed(seed int64) *Random {
	return &Random{seed: initialScramble(seed)}
}

// NewZeroed creates a generator seeded with zero.
func NewZeroed() *Random {
	return WithSeed(0)
}

// defaultUniquifier backs New. Keeping it package-private preserves
// the distinct-values contract without exporting a process global;
// callers who want their own cell use NewFromEntropy with an
// entropy.Uniquifier they own.
var defaultUniquifier entropy.Uniquifier

// New creates a generator seeded from the system clock xored with a
// uniquifier, so near-simultaneous and concurrent constructions get
// distinct seeds.
func New() *Random {
	return NewFromEntropy(&defaultUniquifier)
}

// NewFromEntropy creates a generator seeded with one draw from the
// given source.
func NewFromEntropy(src entropy.Source) *Random {
	return WithSeed(src.Entropy()())
}

func initialScramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// next advances the recurrence seed = (seed*0x5DEECE66D + 0xB) mod
// 2^48 and returns the top bits of the new state. bits is 1..32 at
// every call site.
func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(uint64(r.seed) >> (48 - bits))
}
