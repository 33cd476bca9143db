package system

import (
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
)

// ResizeSystem keeps the surface and camera in step with the window.
type ResizeSystem struct{}

func NewResizeSystem() *ResizeSystem {
	return &ResizeSystem{}
}

func (rs *ResizeSystem) Update(w *ecs.World) {}

// Resize applies a new window size and device pixel ratio. It reports
// whether anything changed; repeating a call with the same arguments is a
// no-op.
func (rs *ResizeSystem) Resize(w *ecs.World, width, height, pixelRatio float64) bool {
	if w == nil || width <= 0 || height <= 0 {
		return false
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}

	changed := false
	if surfaceEntity, ok := w.First(component.SurfaceComponent.Kind().ID()); ok {
		if s, ok := ecs.Get(w, surfaceEntity, component.SurfaceComponent.Kind()); ok {
			if s.Width != width || s.Height != height || s.PixelRatio != pixelRatio {
				s.Width = width
				s.Height = height
				s.PixelRatio = pixelRatio
				changed = true
			}
		}
	}

	aspect := width / height
	ecs.ForEach(w, component.PerspectiveCameraComponent.Kind(), func(_ ecs.Entity, cam *component.PerspectiveCamera) {
		if cam.Aspect != aspect {
			cam.Aspect = aspect
			changed = true
		}
	})

	return changed
}
