package entity

import (
	"fmt"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.EffectSpec, aspect float64) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: failed to add camera tag: %w", err)
	}

	transform := cameraTransform(spec.Camera)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("camera: failed to add transform: %w", err)
	}

	cam := perspectiveCamera(spec.Camera, aspect)
	if err := ecs.Add(w, camera, component.PerspectiveCameraComponent.Kind(), &cam); err != nil {
		return 0, fmt.Errorf("camera: failed to add perspective camera: %w", err)
	}

	return camera, nil
}

// cameraTransform places the camera at the spec position, or at z 10.5 when
// the spec has no transform.
func cameraTransform(spec prefabs.CameraSpec) component.Transform {
	t := spec.Transform
	if t == nil {
		return component.Transform{Z: 10.5}
	}
	return component.Transform{X: t.X, Y: t.Y, Z: t.Z}
}

func perspectiveCamera(spec prefabs.CameraSpec, aspect float64) component.PerspectiveCamera {
	fovy := spec.Fovy
	if fovy <= 0 {
		fovy = 60
	}
	near := spec.Near
	if near <= 0 {
		near = 0.01
	}
	far := spec.Far
	if far <= near {
		far = 200000
	}
	if aspect <= 0 {
		aspect = 1
	}
	return component.PerspectiveCamera{
		Fovy:    fovy,
		Aspect:  aspect,
		Near:    near,
		Far:     far,
		LookAtX: spec.LookAt.X,
		LookAtY: spec.LookAt.Y,
		LookAtZ: spec.LookAt.Z,
	}
}
