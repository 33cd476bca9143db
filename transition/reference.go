package transition

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/milk9111/dispfade/common"
)

const (
	// DistortionSpan is the constant the second displaced lookup subtracts
	// the transition from.
	DistortionSpan = 5.0
	Intensity      = 1.0
)

// Vec4 is a premultiplied RGBA colour with components in [0,1].
type Vec4 [4]float32

func (v Vec4) Mix(o Vec4, t float32) Vec4 {
	return Vec4{
		common.Lerp(v[0], o[0], t),
		common.Lerp(v[1], o[1], t),
		common.Lerp(v[2], o[2], t),
		common.Lerp(v[3], o[3], t),
	}
}

// Sampler returns a colour for a GL-style uv (v grows upward).
type Sampler interface {
	Sample(u, v float32) Vec4
}

// Inputs is everything one fragment depends on.
type Inputs struct {
	Current        Sampler
	Next           Sampler
	Displacement   Sampler
	Transition     float32
	DirectCoupling bool
}

// Fragment computes one output pixel. It has no state: equal inputs give
// equal outputs.
func Fragment(u, v float32, in Inputs) Vec4 {
	t := in.Transition

	d := in.Displacement.Sample(u, v)
	dx, dy := d[0]*Intensity, d[1]*Intensity

	p1u, p1v := u+dx*t, v+dy*t
	p2u, p2v := u-dx*(DistortionSpan-t), v-dy*(DistortionSpan-t)
	if in.DirectCoupling {
		p2u, p2v = u, v
	}

	one := in.Current.Sample(p1u, p1v)
	two := in.Next.Sample(p2u, p2v)

	current := in.Current.Sample(u, v+t*two[0]*Intensity)
	next := in.Next.Sample(u, v+(1-t)*(1-one[0]*Intensity))
	return current.Mix(next, t)
}

// Render runs Fragment for every pixel of dst, sampling at pixel centres.
func Render(dst *image.RGBA, in Inputs) {
	b := dst.Bounds()
	RenderArea(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Max.X), float32(b.Max.Y), in)
}

// RenderArea maps uv (0,0)-(1,1) onto the pixel rectangle from (minX, minY)
// to (maxX, maxY) and runs Fragment for the pixels of dst whose centres fall
// inside it. Pixels outside are left untouched.
func RenderArea(dst *image.RGBA, minX, minY, maxX, maxY float32, in Inputs) {
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		cy := float32(y) + 0.5
		if cy < minY || cy > maxY {
			continue
		}
		v := 1 - (cy-minY)/h
		for x := b.Min.X; x < b.Max.X; x++ {
			cx := float32(x) + 0.5
			if cx < minX || cx > maxX {
				continue
			}
			u := (cx - minX) / w
			dst.SetRGBA(x, y, toRGBA(Fragment(u, v, in)))
		}
	}
}

func toRGBA(c Vec4) color.RGBA {
	to8 := func(f float32) uint8 {
		return uint8(math32.Round(common.Clamp(f, 0, 1) * 255))
	}
	a := to8(c[3])
	clampPremul := func(f float32) uint8 {
		v := to8(f)
		if v > a {
			return a
		}
		return v
	}
	return color.RGBA{R: clampPremul(c[0]), G: clampPremul(c[1]), B: clampPremul(c[2]), A: a}
}
