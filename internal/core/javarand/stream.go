package javarand

import "iter"

// Sequence producers. Each returns an infinite lazy sequence that
// draws from the owning generator as it is pulled; iteration ends
// only when the caller stops. Sequences share the generator's state,
// so interleaving two sequences interleaves their draws, and a
// sequence can be ranged over again to continue where the generator
// left off.

// Int32s yields unbounded 32-bit draws.
func (r *Random) Int32s() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for yield(r.NextInt32()) {
		}
	}
}

// Int32sBounded yields draws in [0, bound). It panics on the first
// pull when bound is not positive.
func (r *Random) Int32sBounded(bound int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for yield(r.NextInt32Bounded(bound)) {
		}
	}
}

// Int32sRange yields draws in [origin, bound).
func (r *Random) Int32sRange(origin, bound int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for yield(r.NextInt32Range(origin, bound)) {
		}
	}
}

// Int64s yields unbounded 64-bit draws.
func (r *Random) Int64s() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for yield(r.NextInt64()) {
		}
	}
}

// Int64sRange yields 64-bit draws in [origin, bound).
func (r *Random) Int64sRange(origin, bound int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for yield(r.NextInt64Range(origin, bound)) {
		}
	}
}

// Float64s yields unit-interval doubles.
func (r *Random) Float64s() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(r.NextFloat64()) {
		}
	}
}

// Float64sRange yields doubles in [origin, bound).
func (r *Random) Float64sRange(origin, bound float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(r.NextFloat64Range(origin, bound)) {
		}
	}
}
