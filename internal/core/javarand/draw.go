package javarand

import (
	"encoding/binary"
	"math"

	"github.com/herabit/jrand/internal/core/mathx"
)

// NextInt32 returns a uniformly distributed signed 32-bit value.
func (r *Random) NextInt32() int32 {
	return r.next(32)
}

// NextUint32 returns NextInt32 reinterpreted as unsigned.
func (r *Random) NextUint32() uint32 {
	return uint32(r.NextInt32())
}

// NextInt32Bounded returns a value in [0, bound). It panics when
// bound is not positive.
//
// Powers of two use an exact loop-free scaling. Everything else uses
// the reference rejection loop, including its wraparound overflow
// check: the check is only approximately an overflow test, but
// changing it would change which draws are rejected and break
// bit-exact compatibility.
func (r *Random) NextInt32Bounded(bound int32) int32 {
	if bound <= 0 {
		panic("javarand: bound must be positive")
	}

	max := bound - 1

	if bound&max == 0 {
		return int32(int64(r.next(31)) * int64(bound) >> 31)
	}

	for {
		bits := r.next(31)
		rem := bits % bound
		if bits-rem+max >= 0 {
			return rem
		}
	}
}

// NextInt32Range returns a value in [origin, bound). When origin >=
// bound the range is degenerate and an unbounded value is returned.
// When the span overflows int32 the draw rejection-samples unbounded
// values instead.
func (r *Random) NextInt32Range(origin, bound int32) int32 {
	span := bound - origin

	switch {
	case origin >= bound:
		return r.NextInt32()
	case span > 0:
		return r.NextInt32Bounded(span) + origin
	default:
		for {
			v := r.NextInt32()
			if v >= origin && v < bound {
				return v
			}
		}
	}
}

// NextInt64 returns a uniformly distributed signed 64-bit value,
// concatenated from two generator advances.
func (r *Random) NextInt64() int64 {
	upper := int64(r.NextInt32()) << 32
	lower := int64(r.NextInt32())
	return upper + lower
}

// NextUint64 returns NextInt64 reinterpreted as unsigned.
func (r *Random) NextUint64() uint64 {
	return uint64(r.NextInt64())
}

// NextInt64Range returns a value in [origin, bound), with the same
// degenerate handling as NextInt32Range. Power-of-two spans mask
// directly; other positive spans rejection-sample the upper 63 bits
// of a full draw, keeping the reference wraparound acceptance check.
func (r *Random) NextInt64Range(origin, bound int64) int64 {
	span := bound - origin
	max := span - 1

	switch {
	case origin >= bound:
		return r.NextInt64()
	case span&max == 0:
		return r.NextInt64()&max + origin
	case span > 0:
		for {
			bits := int64(r.NextUint64() >> 1)
			rem := bits % span
			if bits+max-rem >= 0 {
				return rem + origin
			}
		}
	default:
		for {
			v := r.NextInt64()
			if v >= origin && v < bound {
				return v
			}
		}
	}
}

// NextBool returns a uniformly distributed boolean.
func (r *Random) NextBool() bool {
	return r.next(1) != 0
}

// NextFloat32 returns a value in [0, 1) with 24 bits of precision.
func (r *Random) NextFloat32() float32 {
	return float32(r.next(24)) * floatUnit
}

// NextFloat64 returns a value in [0, 1) with the full 53 bits of
// double precision, assembled from a 26-bit and a 27-bit draw.
func (r *Random) NextFloat64() float64 {
	upper := int64(r.next(26)) << 27
	lower := int64(r.next(27))
	return float64(upper+lower) * doubleUnit
}

// NextFloat64Range returns a value in [origin, bound). The unit draw
// is scaled with a fused multiply-add; when rounding lands the result
// on bound, it is stepped down one ulp to keep the interval half
// open. A degenerate range (origin >= bound) returns the unscaled
// unit draw.
func (r *Random) NextFloat64Range(origin, bound float64) float64 {
	v := r.NextFloat64()

	if origin < bound {
		v = mathx.FMA(v, bound-origin, origin)
		if v >= bound {
			v = math.Float64frombits(math.Float64bits(v) - 1)
		}
	}

	return v
}

// NextBytes fills p four bytes at a time from successive NextInt32
// draws, little-endian within each chunk, truncating the final chunk
// when len(p) is not a multiple of four.
func (r *Random) NextBytes(p []byte) {
	var chunk [4]byte
	for i := 0; i < len(p); i += 4 {
		binary.LittleEndian.PutUint32(chunk[:], r.NextUint32())
		copy(p[i:], chunk[:])
	}
}
