// Package mathx contains the small numeric helpers shared by the fade and effect code.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the linear interpolation between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// Scale8 maps a level in [0, 1] onto device brightness units 0..255, rounding to the nearest unit.
func Scale8(level float64) uint8 {
	return uint8(Clamp(level, 0, 1)*255 + 0.5)
}
