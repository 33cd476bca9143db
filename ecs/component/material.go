package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSlot names one of the material's sampler inputs.
type TextureSlot int

const (
	SlotCurrent TextureSlot = iota
	SlotNext
	SlotDisplacement

	TextureSlotCount = 3
)

func (s TextureSlot) String() string {
	switch s {
	case SlotCurrent:
		return "current_texture"
	case SlotNext:
		return "next_texture"
	case SlotDisplacement:
		return "displacement_map"
	default:
		return "unknown"
	}
}

// ShaderMaterial holds the uniforms of the transition shader.
//
// Textures start as transparent placeholders and are swapped for the decoded
// images as they arrive. Pixels keeps the decoded CPU copy for the fallback
// rasteriser. Transition is only written by the timeline system.
type ShaderMaterial struct {
	Shader         *ebiten.Shader
	Textures       [TextureSlotCount]*ebiten.Image
	Pixels         [TextureSlotCount]image.Image
	Loaded         [TextureSlotCount]bool
	TextureWidth   int
	TextureHeight  int
	Transition     float64
	DirectCoupling bool
}

var ShaderMaterialComponent = NewComponent[ShaderMaterial]()
