package gamemath

import "math"

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sanitize returns f, or 0 when f is NaN or infinite.
func Sanitize(f float64) float64 {
	if !IsFinite(f) {
		return 0
	}
	return f
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return ClampFloat(v, 0, 1)
}

// Lerp moves from toward to by t, with t clamped to [0, 1]. Called once per
// tick with t = rate*dt it gives exponential smoothing.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*Clamp01(t)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
