package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/prefabs"
)

// NewLights adds the ambient and directional lights. The transition material
// is unlit; the lights only exist as scene data.
func NewLights(w *ecs.World, spec *prefabs.EffectSpec) (ambient, directional ecs.Entity, err error) {
	ambient = w.CreateEntity()
	if err := ecs.Add(w, ambient, component.AmbientLightComponent.Kind(), &component.AmbientLight{
		Color:     spec.Lights.Ambient.Color.ColorOr(color.White),
		Intensity: spec.Lights.Ambient.Intensity,
	}); err != nil {
		return 0, 0, fmt.Errorf("lights: failed to add ambient light: %w", err)
	}

	d := spec.Lights.Directional
	directional = w.CreateEntity()
	if err := ecs.Add(w, directional, component.DirectionalLightComponent.Kind(), &component.DirectionalLight{
		Color:      d.Color.ColorOr(color.White),
		Intensity:  d.Intensity,
		CastShadow: d.CastShadow,
	}); err != nil {
		return 0, 0, fmt.Errorf("lights: failed to add directional light: %w", err)
	}
	if err := ecs.Add(w, directional, component.TransformComponent.Kind(), &component.Transform{
		X: d.Transform.X,
		Y: d.Transform.Y,
		Z: d.Transform.Z,
	}); err != nil {
		return 0, 0, fmt.Errorf("lights: failed to add directional transform: %w", err)
	}

	return ambient, directional, nil
}
