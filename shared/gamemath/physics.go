package gamemath

import "math"

// ApplyDrag scales speed down by drag per second over dt.
func ApplyDrag(speed, drag, dt float64) float64 {
	if drag <= 0 {
		return speed
	}
	return speed * math.Max(0, 1-drag*dt)
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

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
