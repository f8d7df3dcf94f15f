package math

import "math"

// Pi as float32.
const Pi = float32(math.Pi)

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sin is a float32 wrapper over math.Sin.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 wrapper over math.Cos.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
