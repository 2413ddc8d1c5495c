package random

import (
	"fmt"
	"math"
)

// Integer is the set of integer types Int accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating-point types Float accepts.
type Floating interface {
	~float32 | ~float64
}

// Int returns a uniformly distributed integer in the closed range [min, max].
// It panics if min > max.
func Int[T Integer](src Source, min, max T) T {
	if min > max {
		panic(fmt.Sprintf("random: invalid range [%v, %v]", min, max))
	}
	src = orDefault(src)

	// Two's complement arithmetic on uint64 gives the exact width for every
	// signed and unsigned type, including the full 64-bit range.
	lo := uint64(int64(min))
	width := uint64(int64(max)) - lo
	if width == math.MaxUint64 {
		return T(src.Uint64())
	}
	return T(lo + src.Uint64N(width+1))
}

// Float returns a uniformly distributed value in the closed range [min, max].
// It panics if min > max or either bound is NaN.
func Float[T Floating](src Source, min, max T) T {
	if !(min <= max) {
		panic(fmt.Sprintf("random: invalid range [%v, %v]", min, max))
	}
	if min == max {
		return min
	}
	src = orDefault(src)

	// Interpolating avoids overflowing hi-lo for ranges wider than MaxFloat64.
	f := src.Float64()
	v := T(float64(min)*(1-f) + float64(max)*f)
	// Rounding (and the float32 conversion) can push the result past max.
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}
