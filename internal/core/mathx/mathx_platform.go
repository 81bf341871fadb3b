//go:build !mathportable && !mathfallback

package mathx

import "math"

// FMA returns x*y + z, computed with a single rounding.
func FMA(x, y, z float64) float64 {
	return math.FMA(x, y, z)
}

// Ln returns the natural logarithm of x.
func Ln(x float64) float64 {
	return math.Log(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
