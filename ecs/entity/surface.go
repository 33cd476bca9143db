package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/prefabs"
)

var defaultClearColor = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0}

// NewSurface creates the render surface. width and height are the initial
// window size; zero values use the surface size from the effect file.
func NewSurface(w *ecs.World, spec *prefabs.EffectSpec, width, height float64) (ecs.Entity, error) {
	s := spec.Surface
	if width <= 0 {
		width = s.Width
	}
	if height <= 0 {
		height = s.Height
	}
	ratio := s.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	toneMapping := s.ToneMapping
	if toneMapping == "" {
		toneMapping = "aces"
	}

	entity := w.CreateEntity()
	if err := ecs.Add(w, entity, component.SurfaceComponent.Kind(), &component.Surface{
		Width:               width,
		Height:              height,
		PixelRatio:          ratio,
		ClearColor:          s.ClearColor.ColorOr(defaultClearColor),
		ToneMapping:         toneMapping,
		ToneMappingExposure: s.ToneMappingExposure,
		ShadowMap:           s.ShadowMap,
	}); err != nil {
		return 0, fmt.Errorf("surface: failed to add surface component: %w", err)
	}

	return entity, nil
}
