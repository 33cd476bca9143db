package transition

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/milk9111/dispfade/common"
)

// WrapMode is how a Texture addresses texels outside its bounds.
type WrapMode int

const (
	ClampToEdge WrapMode = iota
	Repeat
)

// Texture is a bilinear Sampler over a decoded image.
type Texture struct {
	w, h int
	pix  []Vec4
	wrap WrapMode
}

// NewTexture copies img into premultiplied float texels.
func NewTexture(img image.Image, wrap WrapMode) *Texture {
	b := img.Bounds()
	t := &Texture{w: b.Dx(), h: b.Dy(), wrap: wrap}
	t.pix = make([]Vec4, t.w*t.h)
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.pix[y*t.w+x] = Vec4{float32(r) / 0xffff, float32(g) / 0xffff, float32(bl) / 0xffff, float32(a) / 0xffff}
		}
	}
	return t
}

func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

func (t *Texture) texel(x, y int) Vec4 {
	switch t.wrap {
	case Repeat:
		x = int(common.Mod(float32(x), float32(t.w)))
		y = int(common.Mod(float32(y), float32(t.h)))
	default:
		x = min(max(x, 0), t.w-1)
		y = min(max(y, 0), t.h-1)
	}
	return t.pix[y*t.w+x]
}

// Sample filters the four texels around uv. Row 0 of the image is v = 1.
func (t *Texture) Sample(u, v float32) Vec4 {
	if t == nil || t.w == 0 || t.h == 0 {
		return Vec4{}
	}
	px := u*float32(t.w) - 0.5
	py := (1-v)*float32(t.h) - 0.5
	x0, y0 := int(math32.Floor(px)), int(math32.Floor(py))
	fx, fy := common.Fract(px), common.Fract(py)

	top := t.texel(x0, y0).Mix(t.texel(x0+1, y0), fx)
	bottom := t.texel(x0, y0+1).Mix(t.texel(x0+1, y0+1), fx)
	return top.Mix(bottom, fy)
}
