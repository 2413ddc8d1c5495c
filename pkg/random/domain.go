package random

import "math"

// Domain is a bounded numeric domain such as latitude or longitude.
// Lower and Upper are the absolute limits a requested sub-range must respect.
type Domain[T Floating] struct {
	Lower T
	Upper T
}

// Geographic coordinate domains, in degrees.
var (
	Latitude  = Domain[float64]{Lower: -90, Upper: 90}
	Longitude = Domain[float64]{Lower: -180, Upper: 180}
)

// Contains reports whether v lies within the absolute bounds.
func (d Domain[T]) Contains(v T) bool {
	return v >= d.Lower && v <= d.Upper
}

// Valid reports whether [min, max] is a usable sub-range of the domain.
// The checks run in order: inverted range, min out of bounds, max out of
// bounds. NaN bounds are never valid.
func (d Domain[T]) Valid(min, max T) bool {
	if isNaN(min) || isNaN(max) {
		return false
	}
	if min > max {
		return false
	}
	return d.Contains(min) && d.Contains(max)
}

// Random returns a value anywhere within the domain.
func (d Domain[T]) Random(src Source) T {
	return Float(src, d.Lower, d.Upper)
}

// InRange returns a value within [min, max] when the range is valid for the
// domain. Otherwise the requested range is ignored and the result of Random is
// returned instead; the caller cannot tell the two paths apart.
func (d Domain[T]) InRange(src Source, min, max T) T {
	return InRange(src, min, max, d.Lower, d.Upper, func() T { return d.Random(src) })
}

// InRange is the general form of Domain.InRange for callers that need a custom
// fallback generator.
func InRange[T Floating](src Source, min, max, lower, upper T, fallback func() T) T {
	if !(Domain[T]{Lower: lower, Upper: upper}).Valid(min, max) {
		return fallback()
	}
	return Float(src, min, max)
}

func isNaN[T Floating](v T) bool {
	return math.IsNaN(float64(v))
}
