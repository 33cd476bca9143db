package system

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/ecs/entity"
	"github.com/milk9111/dispfade/ecs/render"
)

// TextureSystem binds decoded textures to the transition material. Decoding
// happens on loader goroutines; GPU images are created here, on the game
// loop.
type TextureSystem struct {
	requests []entity.TextureRequest
	loader   *render.Loader
	pending  int

	newImage func(img image.Image) *ebiten.Image
}

func NewTextureSystem(requests []entity.TextureRequest) *TextureSystem {
	return &TextureSystem{
		requests: requests,
		newImage: ebiten.NewImageFromImage,
	}
}

// Pending is the number of loads still in flight.
func (ts *TextureSystem) Pending() int {
	return ts.pending
}

func (ts *TextureSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	meshEntity, ok := w.First(component.ShaderMaterialComponent.Kind().ID())
	if !ok {
		return
	}
	mat, ok := ecs.Get(w, meshEntity, component.ShaderMaterialComponent.Kind())
	if !ok {
		return
	}

	if ts.loader == nil {
		ts.loader = render.NewLoader(mat.TextureWidth, mat.TextureHeight)
		for _, req := range ts.requests {
			ts.loader.Load(req.Slot, req.Path)
			ts.pending++
		}
	}

	for _, res := range ts.loader.Poll() {
		ts.pending--
		if res.Err != nil {
			log.Printf("texture: %s (%s): %v", res.Slot, res.Path, res.Err)
			continue
		}
		if res.Slot < 0 || int(res.Slot) >= component.TextureSlotCount {
			continue
		}

		mat.Pixels[res.Slot] = res.Image
		mat.Textures[res.Slot] = ts.newImage(res.Image)
		mat.Loaded[res.Slot] = true

		if res.Slot == component.SlotDisplacement {
			if surfaceEntity, ok := w.First(component.SurfaceComponent.Kind().ID()); ok {
				if surface, ok := ecs.Get(w, surfaceEntity, component.SurfaceComponent.Kind()); ok {
					surface.Ready = true
				}
			}
		}
	}
}
