package tween

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(p float64) float64

func Linear(p float64) float64 { return p }

// PowerIn returns the polynomial ease-in of the given strength. Strength 1
// is quadratic and strength 4 quintic, matching the power1..power4 names.
func PowerIn(strength int) EaseFunc {
	exp := float64(strength + 1)
	return func(p float64) float64 {
		return math.Pow(p, exp)
	}
}

func PowerOut(strength int) EaseFunc {
	in := PowerIn(strength)
	return func(p float64) float64 {
		return 1 - in(1-p)
	}
}

func PowerInOut(strength int) EaseFunc {
	in := PowerIn(strength)
	return func(p float64) float64 {
		if p < 0.5 {
			return in(p*2) / 2
		}
		return 1 - in((1-p)*2)/2
	}
}

func SineIn(p float64) float64    { return 1 - math.Cos(p*math.Pi/2) }
func SineOut(p float64) float64   { return math.Sin(p * math.Pi / 2) }
func SineInOut(p float64) float64 { return -(math.Cos(math.Pi*p) - 1) / 2 }

func ExpoIn(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return math.Pow(2, 10*(p-1))
}

func ExpoOut(p float64) float64 {
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

func ExpoInOut(p float64) float64 {
	if p <= 0 || p >= 1 {
		return p
	}
	if p < 0.5 {
		return ExpoIn(p*2) / 2
	}
	return 1 - ExpoIn((1-p)*2)/2
}

// ParseEase resolves an ease name such as "power4.out", "sine.inOut" or the
// older "Power4.easeOut" spelling. Names are case-insensitive and "linear",
// "none" and "power0" are all linear.
func ParseEase(name string) (EaseFunc, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "linear", "none", "power0", "power0.in", "power0.out", "power0.inout":
		return Linear, nil
	}

	family, mode, ok := strings.Cut(n, ".")
	if !ok {
		mode = "out"
	}
	mode = strings.TrimPrefix(mode, "ease")

	switch {
	case strings.HasPrefix(family, "power"):
		strength, err := strconv.Atoi(strings.TrimPrefix(family, "power"))
		if err != nil || strength < 1 || strength > 4 {
			return nil, fmt.Errorf("tween: unknown ease %q", name)
		}
		switch mode {
		case "in":
			return PowerIn(strength), nil
		case "out":
			return PowerOut(strength), nil
		case "inout":
			return PowerInOut(strength), nil
		}
	case family == "sine":
		switch mode {
		case "in":
			return SineIn, nil
		case "out":
			return SineOut, nil
		case "inout":
			return SineInOut, nil
		}
	case family == "expo":
		switch mode {
		case "in":
			return ExpoIn, nil
		case "out":
			return ExpoOut, nil
		case "inout":
			return ExpoInOut, nil
		}
	}
	return nil, fmt.Errorf("tween: unknown ease %q", name)
}
