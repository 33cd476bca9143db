package common

import "github.com/chewxy/math32"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// Mod is the GLSL mod: the result has the sign of y.
func Mod(x, y float32) float32 {
	return x - y*math32.Floor(x/y)
}

func Fract(x float32) float32 {
	return x - math32.Floor(x)
}
