//go:build mathfallback

package mathx

import "math"

// The fallback strategy trades accuracy for size: no tables, no long
// polynomials, no correctly rounded guarantees. Ln is good to about
// 1e-4 absolute error and Sqrt to about 1e-13 relative error, which is
// plenty for Gaussian shaping but nothing else.

// FMA returns x*y + z with two roundings.
func FMA(x, y, z float64) float64 {
	return x*y + z
}

const (
	mantissaMask = 1<<52 - 1
	exponentOne  = 1023 << 52
)

// Degree-4 minimax fit of log2 over the normalized mantissa [1, 2).
var log2Coefficients = [5]float64{
	-0.081615808498122389,
	0.64514236358772081,
	-2.1206751311142673,
	4.0700907918522011,
	-2.5128546239033374,
}

// log2 approximates the base-2 logarithm by splitting x into exponent
// and mantissa and evaluating the polynomial on the mantissa.
func log2(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0 || math.IsInf(x, -1):
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}

	bits := math.Float64bits(x)
	exp := int(bits>>52)&0x7ff - 0x3ff
	if exp == -0x3ff {
		// Subnormal: renormalize so the polynomial sees a proper
		// mantissa.
		bits = math.Float64bits(x * 0x1p52)
		exp = int(bits>>52)&0x7ff - 0x3ff - 52
	}

	bits &= mantissaMask
	bits |= exponentOne
	m := math.Float64frombits(bits)

	u := log2Coefficients[0]
	for _, c := range log2Coefficients[1:] {
		u = u*m + c
	}

	return u + float64(exp)
}

// Ln returns the approximate natural logarithm of x.
func Ln(x float64) float64 {
	return log2(x) * math.Ln2
}

// Magic constant seeding the square-root Newton iteration; shifting
// the argument's bits right once and adding this lands within a few
// percent of the true root.
const sqrtBitHack = 0x1ff7a7dceaaec900

// Sqrt approximates the square root of x with a bit-hack seed and
// three Newton iterations.
func Sqrt(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	}

	bits := sqrtBitHack + math.Float64bits(x)>>1
	y := math.Float64frombits(bits)

	y = (y + x/y) * 0.5
	y = (y + x/y) * 0.5
	y = (y + x/y) * 0.5

	return y
}
