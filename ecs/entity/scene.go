package entity

import (
	"fmt"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/prefabs"
)

// Scene holds the entities of the transition effect. They live for the whole
// run.
type Scene struct {
	Surface          ecs.Entity
	Camera           ecs.Entity
	AmbientLight     ecs.Entity
	DirectionalLight ecs.Entity
	Mesh             ecs.Entity
}

// BuildScene creates every entity of the effect in setup order: surface,
// camera, lights, mesh.
func BuildScene(w *ecs.World, spec *prefabs.EffectSpec, width, height float64) (*Scene, error) {
	var scene Scene
	var err error

	if scene.Surface, err = NewSurface(w, spec, width, height); err != nil {
		return nil, err
	}

	aspect := 1.0
	if s, ok := ecs.Get(w, scene.Surface, component.SurfaceComponent.Kind()); ok && s.Height > 0 {
		aspect = s.Width / s.Height
	}
	if scene.Camera, err = NewCamera(w, spec, aspect); err != nil {
		return nil, err
	}

	if scene.AmbientLight, scene.DirectionalLight, err = NewLights(w, spec); err != nil {
		return nil, err
	}

	if scene.Mesh, err = NewTransitionMesh(w, spec); err != nil {
		return nil, err
	}

	return &scene, nil
}

// ApplySpec updates a running scene from an edited spec. Camera placement,
// mesh size, coupling mode and the timeline are replaced; elapsed time and
// loaded textures are kept.
func ApplySpec(w *ecs.World, scene *Scene, spec *prefabs.EffectSpec) error {
	if scene == nil {
		return fmt.Errorf("reload: nil scene")
	}

	tl, err := BuildTimeline(spec.Timeline)
	if err != nil {
		return fmt.Errorf("reload: failed to build timeline: %w", err)
	}

	if t, ok := ecs.Get(w, scene.Camera, component.TransformComponent.Kind()); ok {
		*t = cameraTransform(spec.Camera)
	}
	if cam, ok := ecs.Get(w, scene.Camera, component.PerspectiveCameraComponent.Kind()); ok {
		*cam = perspectiveCamera(spec.Camera, cam.Aspect)
	}

	if mesh, ok := ecs.Get(w, scene.Mesh, component.PlaneMeshComponent.Kind()); ok {
		if spec.Mesh.Width > 0 {
			mesh.Width = spec.Mesh.Width
		}
		if spec.Mesh.Height > 0 {
			mesh.Height = spec.Mesh.Height
		}
	}
	if mat, ok := ecs.Get(w, scene.Mesh, component.ShaderMaterialComponent.Kind()); ok {
		mat.DirectCoupling = spec.Material.DirectCoupling
	}
	if timeline, ok := ecs.Get(w, scene.Mesh, component.TimelineComponent.Kind()); ok {
		timeline.Timeline = tl
	}
	if surface, ok := ecs.Get(w, scene.Surface, component.SurfaceComponent.Kind()); ok {
		surface.ClearColor = spec.Surface.ClearColor.ColorOr(defaultClearColor)
	}

	return nil
}
