package javarand

import "github.com/herabit/jrand/internal/core/mathx"

// NextGaussian returns a normally distributed value with mean 0 and
// standard deviation 1, using the polar Box-Muller method.
//
// Deviates are produced in pairs: a call that finds a cached value
// consumes it without advancing the generator; otherwise the rejection
// loop draws two unit values per attempt until their mapped pair lands
// strictly inside the unit disk (0 < s < 1), returns one transformed
// value and caches the other. The transform is the single place the
// mathx backend's Ln and Sqrt are exercised, so this is the only draw
// whose low bits can differ across math strategies.
func (r *Random) NextGaussian() float64 {
	if r.pendingGaussian != nil {
		v := *r.pendingGaussian
		r.pendingGaussian = nil
		return v
	}

	var v1, v2, s float64
	for {
		v1 = mathx.FMA(2, r.NextFloat64(), -1)
		v2 = mathx.FMA(2, r.NextFloat64(), -1)
		s = v1*v1 + v2*v2
		if s > 0 && s < 1 {
			break
		}
	}

	multiplier := mathx.Sqrt(-2 * mathx.Ln(s) / s)
	pending := v2 * multiplier
	r.pendingGaussian = &pending

	return v1 * multiplier
}
