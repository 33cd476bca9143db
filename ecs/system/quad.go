package system

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/milk9111/dispfade/common"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
)

// MeshQuad holds the screen positions of a plane's corners in the order
// top-left, top-right, bottom-left, bottom-right.
type MeshQuad [4][2]float32

// quadIndices splits a MeshQuad into two triangles.
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// ProjectMesh projects the plane on mesh through the scene camera onto a
// viewW x viewH viewport. It fails when there is no camera or a corner falls
// outside the camera's depth range.
func ProjectMesh(w *ecs.World, mesh ecs.Entity, viewW, viewH float32) (MeshQuad, bool) {
	var quad MeshQuad

	camEntity, ok := w.First(component.CameraTagComponent.Kind().ID())
	if !ok {
		return quad, false
	}
	cam, ok := ecs.Get(w, camEntity, component.PerspectiveCameraComponent.Kind())
	if !ok {
		return quad, false
	}
	eye, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return quad, false
	}
	plane, ok := ecs.Get(w, mesh, component.PlaneMeshComponent.Kind())
	if !ok {
		return quad, false
	}
	var center component.Transform
	if t, ok := ecs.Get(w, mesh, component.TransformComponent.Kind()); ok {
		center = *t
	}

	persp := common.NewPerspective(
		common.Vec3{X: float32(eye.X), Y: float32(eye.Y), Z: float32(eye.Z)},
		common.Vec3{X: float32(cam.LookAtX), Y: float32(cam.LookAtY), Z: float32(cam.LookAtZ)},
		float32(cam.Fovy), float32(cam.Aspect), float32(cam.Near), float32(cam.Far),
		viewW, viewH,
	)

	hw, hh := float32(plane.Width/2), float32(plane.Height/2)
	cx, cy, cz := float32(center.X), float32(center.Y), float32(center.Z)
	corners := [4]common.Vec3{
		{X: cx - hw, Y: cy + hh, Z: cz},
		{X: cx + hw, Y: cy + hh, Z: cz},
		{X: cx - hw, Y: cy - hh, Z: cz},
		{X: cx + hw, Y: cy - hh, Z: cz},
	}
	for i, c := range corners {
		x, y, ok := persp.Project(c)
		if !ok {
			return quad, false
		}
		quad[i] = [2]float32{x, y}
	}
	return quad, true
}

// Bounds is the pixel rectangle enclosing the quad.
func (q MeshQuad) Bounds() image.Rectangle {
	minX, minY := q[0][0], q[0][1]
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = math32.Min(minX, p[0])
		minY = math32.Min(minY, p[1])
		maxX = math32.Max(maxX, p[0])
		maxY = math32.Max(maxY, p[1])
	}
	return image.Rect(
		int(math32.Round(minX)), int(math32.Round(minY)),
		int(math32.Round(maxX)), int(math32.Round(maxY)),
	)
}
