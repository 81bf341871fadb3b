// Package entropy provides seed material for unseeded generator
// construction.
//
// A Source is a capability that yields a zero-argument function
// producing a signed 64-bit value. Sources themselves carry no
// generator state; the only mutable ones are Static, a caller-owned
// atomic cell, and Uniquifier, a caller-owned counter that stays
// distinct under concurrent use.
package entropy

import (
	"sync/atomic"
	"time"
)

// Source is a capability describing an entropy provider.
type Source interface {
	// Entropy returns a function producing a 64-bit signed value.
	Entropy() func() int64
}

// Func adapts a plain function into a Source.
type Func func() int64

// Entropy returns the function itself.
func (f Func) Entropy() func() int64 {
	return f
}

// Zero is a Source that always yields zero, for deterministic or
// offline builds.
type Zero struct{}

// Entropy returns a function that always returns zero.
func (Zero) Entropy() func() int64 {
	return func() int64 { return 0 }
}

// Static is a mutable entropy cell. The zero value holds zero and is
// ready to use. Reads and writes are atomic with relaxed semantics:
// the cell orders nothing beyond its own value.
type Static struct {
	cell atomic.Int64
}

// Get returns the current cell value.
func (s *Static) Get() int64 {
	return s.cell.Load()
}

// Set stores value and returns the previous one.
func (s *Static) Set(value int64) int64 {
	return s.cell.Swap(value)
}

// Entropy returns a function reading the cell.
func (s *Static) Entropy() func() int64 {
	return s.Get
}

// Nanos is a Source backed by the system clock. It never fails.
type Nanos struct{}

// Entropy returns a function yielding nanoseconds since the Unix
// epoch.
func (Nanos) Entropy() func() int64 {
	return func() int64 {
		return time.Now().UnixNano()
	}
}

const (
	// First value handed out by a Uniquifier.
	firstUniquifier = 8682522807148012
	// Multiplier advancing the uniquifier between callers.
	uniquifierMultiplier = 181783497276652981
)

// Uniquifier produces distinct values across concurrent callers by
// advancing an atomic cell with a wrapping multiply. The zero value is
// ready to use. Combined (xor) with a clock reading it decorrelates
// near-simultaneous unseeded generator creations.
type Uniquifier struct {
	cell atomic.Int64
}

// Next advances the counter and returns the value this caller owns.
// Racing callers each observe a different value.
func (u *Uniquifier) Next() int64 {
	for {
		prev := u.cell.Load()
		current := prev
		if current == 0 {
			current = firstUniquifier
		}
		next := current * uniquifierMultiplier
		if u.cell.CompareAndSwap(prev, next) {
			return current
		}
	}
}

// Entropy returns a function combining the uniquifier with the system
// clock, the seed recipe used for unseeded construction.
func (u *Uniquifier) Entropy() func() int64 {
	clock := Nanos{}.Entropy()
	return func() int64 {
		return u.Next() ^ clock()
	}
}
