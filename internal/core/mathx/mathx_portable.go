//go:build mathportable

package mathx

import "math"

// The portable strategy computes everything from IEEE bit patterns and
// plain double arithmetic, so results do not depend on the presence of
// hardware FMA or a platform libm.

const splitter = 1<<27 + 1

// split decomposes a into hi+lo where each half carries at most 26
// significant bits, making hi*hi products exact.
func split(a float64) (hi, lo float64) {
	c := splitter * a
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}

// FMA returns x*y + z using Dekker two-product and two-sum expansions.
// The result is faithfully rounded: within one ulp of the exact value,
// though not always the correctly rounded one.
func FMA(x, y, z float64) float64 {
	p := x * y
	if math.IsNaN(p) || math.IsInf(p, 0) || math.IsNaN(z) || math.IsInf(z, 0) {
		return p + z
	}
	if math.Abs(x) > 0x1p500 || math.Abs(y) > 0x1p500 || math.Abs(x) < 0x1p-500 || math.Abs(y) < 0x1p-500 {
		// Splitting would overflow or underflow; a single rounding of
		// the product is the best available here.
		return p + z
	}

	xh, xl := split(x)
	yh, yl := split(y)
	e := ((xh*yh - p) + xh*yl + xl*yh) + xl*yl

	s := p + z
	b := s - p
	err := (p - (s - b)) + (z - b)

	return s + (err + e)
}

// Coefficients for the log polynomial, from the classic fdlibm
// implementation of log(x).
const (
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10
	lgL1  = 6.666666666666735130e-01
	lgL2  = 3.999999999940941908e-01
	lgL3  = 2.857142874366239149e-01
	lgL4  = 2.222219843214978396e-01
	lgL5  = 1.818357216161805012e-01
	lgL6  = 1.531383769920937332e-01
	lgL7  = 1.479819860511658591e-01
)

// Ln returns the natural logarithm of x via the fdlibm argument
// reduction: x = 2**k * (1+f) with sqrt(2)/2 < 1+f < sqrt(2), then a
// degree-14 odd polynomial in f/(2+f).
func Ln(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}

	f1, ki := frexp(x)
	if f1 < math.Sqrt2/2 {
		f1 *= 2
		ki--
	}
	f := f1 - 1
	k := float64(ki)

	s := f / (2 + f)
	s2 := s * s
	s4 := s2 * s2
	t1 := s2 * (lgL1 + s4*(lgL3+s4*(lgL5+s4*lgL7)))
	t2 := s4 * (lgL2 + s4*(lgL4+s4*lgL6))
	r := t1 + t2
	hfsq := 0.5 * f * f

	return k*ln2Hi - ((hfsq - (s*(hfsq+r) + k*ln2Lo)) - f)
}

// frexp breaks x into a fraction in [1/2, 1) and a power of two.
func frexp(x float64) (frac float64, exp int) {
	bits := math.Float64bits(x)
	e := int(bits>>52) & 0x7ff
	if e == 0 {
		// Subnormal: renormalize first.
		x *= 0x1p52
		bits = math.Float64bits(x)
		e = int(bits>>52)&0x7ff - 52
	}
	exp = e - 1022
	bits &^= uint64(0x7ff) << 52
	bits |= uint64(1022) << 52
	return math.Float64frombits(bits), exp
}

// Sqrt returns the correctly rounded square root of x, computed bit
// by bit over the significand in integer arithmetic.
func Sqrt(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	}

	ix := math.Float64bits(x)
	exp := int(ix>>52) & 0x7ff
	if exp == 0 {
		// Subnormal: shift the significand up into place.
		for ix&(1<<52) == 0 {
			ix <<= 1
			exp--
		}
		exp++
	}
	exp -= 1023

	ix &^= uint64(0x7ff) << 52
	ix |= 1 << 52
	if exp&1 == 1 {
		ix <<= 1
	}
	exp >>= 1
	ix <<= 1

	var q, s uint64
	r := uint64(1 << 53)
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}

	if ix != 0 {
		q += q & 1
	}
	ix = q>>1 + uint64(exp-1+1023)<<52
	return math.Float64frombits(ix)
}
