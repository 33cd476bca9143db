package transition

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSampler Vec4

func (c constSampler) Sample(u, v float32) Vec4 { return Vec4(c) }

// recordingSampler returns a colour derived from the lookup position so
// tests can see where the fragment sampled.
type recordingSampler struct {
	calls [][2]float32
}

func (r *recordingSampler) Sample(u, v float32) Vec4 {
	r.calls = append(r.calls, [2]float32{u, v})
	return Vec4{0.5, 0.25, 0, 1}
}

func gradientImage(w, h int, seed uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x*37) + seed,
				G: uint8(y*53) + seed*3,
				B: uint8((x+y)*11) ^ seed,
				A: 0xff,
			})
		}
	}
	return img
}

func testInputs(t float32) Inputs {
	return Inputs{
		Current:      NewTexture(gradientImage(8, 10, 1), ClampToEdge),
		Next:         NewTexture(gradientImage(8, 10, 90), ClampToEdge),
		Displacement: NewTexture(gradientImage(5, 5, 17), Repeat),
		Transition:   t,
	}
}

func TestFragmentIsDeterministic(t *testing.T) {
	in := testInputs(0.37)
	for _, uv := range [][2]float32{{0.1, 0.2}, {0.5, 0.5}, {0.93, 0.07}} {
		a := Fragment(uv[0], uv[1], in)
		b := Fragment(uv[0], uv[1], in)
		assert.Equal(t, a, b)
	}
}

func TestFragmentBoundaryComposite(t *testing.T) {
	for _, direct := range []bool{false, true} {
		start := testInputs(0)
		start.DirectCoupling = direct
		end := testInputs(1)
		end.DirectCoupling = direct

		for _, uv := range [][2]float32{{0.1, 0.2}, {0.5, 0.5}, {0.93, 0.07}} {
			u, v := uv[0], uv[1]
			assert.Equal(t, start.Current.Sample(u, v), Fragment(u, v, start), "t=0 uv=%v", uv)

			want := end.Next.Sample(u, v)
			got := Fragment(u, v, end)
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-6, "t=1 uv=%v channel %d", uv, i)
			}
		}
	}
}

func TestFragmentCouplingLookups(t *testing.T) {
	current := &recordingSampler{}
	next := &recordingSampler{}
	in := Inputs{
		Current:      current,
		Next:         next,
		Displacement: constSampler{0.2, 0.1, 0, 1},
		Transition:   0.5,
	}
	got := Fragment(0.5, 0.5, in)
	assert.Equal(t, Vec4{0.5, 0.25, 0, 1}, got)

	require.Len(t, current.calls, 2)
	require.Len(t, next.calls, 2)

	// displaced lookups
	assert.InDelta(t, 0.6, current.calls[0][0], 1e-6)
	assert.InDelta(t, 0.55, current.calls[0][1], 1e-6)
	assert.InDelta(t, 0.5-0.2*4.5, next.calls[0][0], 1e-6)
	assert.InDelta(t, 0.5-0.1*4.5, next.calls[0][1], 1e-6)

	// coupled lookups: red of the other image offsets v
	assert.InDelta(t, 0.5, current.calls[1][0], 1e-6)
	assert.InDelta(t, 0.5+0.5*0.5, current.calls[1][1], 1e-6)
	assert.InDelta(t, 0.5, next.calls[1][0], 1e-6)
	assert.InDelta(t, 0.5+0.5*(1-0.5), next.calls[1][1], 1e-6)
}

func TestFragmentDirectCouplingSamplesAtUV(t *testing.T) {
	next := &recordingSampler{}
	in := Inputs{
		Current:        constSampler{0, 0, 0, 1},
		Next:           next,
		Displacement:   constSampler{0.2, 0.1, 0, 1},
		Transition:     0.5,
		DirectCoupling: true,
	}
	Fragment(0.3, 0.7, in)
	require.NotEmpty(t, next.calls)
	assert.Equal(t, [2]float32{0.3, 0.7}, next.calls[0])
}

func TestTextureWrapModes(t *testing.T) {
	img := gradientImage(4, 4, 5)
	v := float32(1 - 0.5/4)

	clamped := NewTexture(img, ClampToEdge)
	assert.Equal(t, clamped.Sample(0, v), clamped.Sample(-0.5, v))
	assert.Equal(t, clamped.Sample(1, v), clamped.Sample(1.75, v))

	repeated := NewTexture(img, Repeat)
	assert.Equal(t, repeated.Sample(0.25, v), repeated.Sample(1.25, v))
	assert.Equal(t, repeated.Sample(0.25, v), repeated.Sample(-0.75, v))
	assert.NotEqual(t, repeated.Sample(-0.5, v), clamped.Sample(-0.5, v))
}

func TestTextureSampleTexelCentre(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tex := NewTexture(img, ClampToEdge)
	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	// Row 0 of the image is the top, so v=0.75 lands on it.
	assert.Equal(t, Vec4{1, 0, 0, 1}, tex.Sample(0.25, 0.75))
	assert.Equal(t, Vec4{0, 0, 1, 1}, tex.Sample(0.25, 0.25))
	assert.Equal(t, Vec4{0.5, 0.5, 0, 1}, tex.Sample(0.5, 0.75))
}

func TestRender(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 3, 2))
	Render(dst, Inputs{
		Current:      constSampler{1, 0, 0, 1},
		Next:         constSampler{0, 0, 1, 1},
		Displacement: constSampler{0.1, 0.1, 0, 1},
		Transition:   0.5,
	})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, color.RGBA{R: 128, G: 0, B: 128, A: 255}, dst.RGBAAt(x, y))
		}
	}
}

func TestRenderAreaLeavesOutsideUntouched(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rec := &recordingSampler{}
	RenderArea(dst, 1, 1, 3, 3, Inputs{
		Current:      constSampler{1, 0, 0, 1},
		Next:         constSampler{0, 0, 1, 1},
		Displacement: rec,
	})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if inside {
				assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(x, y), "(%d,%d)", x, y)
			} else {
				assert.Equal(t, color.RGBA{}, dst.RGBAAt(x, y), "(%d,%d)", x, y)
			}
		}
	}

	// The top-left inside pixel centre maps to u 0.25 and v 0.75.
	require.Len(t, rec.calls, 4)
	assert.Equal(t, [2]float32{0.25, 0.75}, rec.calls[0])
}

func TestTextureRepeatTexelUsesFloorMod(t *testing.T) {
	tex := NewTexture(gradientImage(4, 3, 9), Repeat)
	assert.Equal(t, tex.texel(3, 2), tex.texel(-1, -1))
	assert.Equal(t, tex.texel(0, 0), tex.texel(4, 3))
	assert.Equal(t, tex.texel(1, 1), tex.texel(-7, -5))
}
