package system

import (
	"image"

	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/transition"
)

// CPUInputs wraps transition.Inputs built from decoded material pixels.
type CPUInputs struct {
	transition.Inputs
}

// NewCPUInputs builds samplers for each slot. Content images clamp to edge,
// the displacement map repeats; a missing slot samples as transparent.
func NewCPUInputs(pixels [component.TextureSlotCount]image.Image) CPUInputs {
	sampler := func(img image.Image, wrap transition.WrapMode) transition.Sampler {
		if img == nil || img.Bounds().Empty() {
			return transparent{}
		}
		return transition.NewTexture(img, wrap)
	}
	return CPUInputs{Inputs: transition.Inputs{
		Current:      sampler(pixels[component.SlotCurrent], transition.ClampToEdge),
		Next:         sampler(pixels[component.SlotNext], transition.ClampToEdge),
		Displacement: sampler(pixels[component.SlotDisplacement], transition.Repeat),
	}}
}

type transparent struct{}

func (transparent) Sample(u, v float32) transition.Vec4 {
	return transition.Vec4{}
}

// RenderQuad rasterises the transition into the part of dst covered by
// quad. The quad is treated as its axis-aligned extent, which is exact for a
// camera facing the plane head on.
func RenderQuad(dst *image.RGBA, quad MeshQuad, in transition.Inputs) {
	minX, minY := quad[0][0], quad[0][1]
	maxX, maxY := minX, minY
	for _, p := range quad[1:] {
		minX = min(minX, p[0])
		minY = min(minY, p[1])
		maxX = max(maxX, p[0])
		maxY = max(maxY, p[1])
	}
	transition.RenderArea(dst, minX, minY, maxX, maxY, in)
}
