// Package mathx supplies the three floating-point primitives the
// generator core depends on: FMA, Ln, and Sqrt.
//
// # Strategies
//
// The implementation is selected at build time:
//
//   - default: the platform strategy, backed by the standard math
//     package (math.FMA, math.Log, math.Sqrt).
//   - mathportable build tag: portable software floating point that
//     touches only IEEE bit patterns and plain arithmetic. FMA is
//     faithfully rounded (within one ulp of the exact result) rather
//     than always correctly rounded.
//   - mathfallback build tag: a cheap polynomial/bit-hack variant for
//     environments where size and speed beat accuracy. Ln is accurate
//     to roughly 1e-4 and Sqrt to roughly 1e-13 relative error.
//
// # Contract
//
// Whichever strategy is compiled in, FMA(x, y, z) stays within
// ordinary rounding tolerance of x*y+z, and Ln/Sqrt are monotonic and
// follow IEEE semantics on special values: Ln(±0) = -Inf, Ln(x<0) =
// NaN, Ln(+Inf) = +Inf, Ln(NaN) = NaN, Sqrt(-x) = NaN, Sqrt(±0) = ±0,
// Sqrt(+Inf) = +Inf.
//
// These functions feed the Gaussian transform in the generator core.
// Accuracy differences between strategies are the only source of
// output divergence across builds: two binaries built with different
// strategies can return Gaussian deviates differing in the low bits,
// while every integer, float, and boolean draw remains bit-identical.
package mathx
