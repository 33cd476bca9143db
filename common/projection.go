package common

import "github.com/chewxy/math32"

type Vec3 struct {
	X, Y, Z float32
}

func (a Vec3) Sub(b Vec3) Vec3    { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float32 { return math32.Sqrt(a.Dot(a)) }

func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Perspective is a look-at perspective camera resolved against a viewport.
// Y is up in world space and down on the viewport.
type Perspective struct {
	Eye      Vec3
	Target   Vec3
	FovyDeg  float32
	Aspect   float32
	Near     float32
	Far      float32
	ViewW    float32
	ViewH    float32
	right    Vec3
	up       Vec3
	forward  Vec3
	halfTanY float32
}

// NewPerspective builds the view basis once so Project stays cheap.
func NewPerspective(eye, target Vec3, fovyDeg, aspect, near, far, viewW, viewH float32) Perspective {
	p := Perspective{
		Eye:     eye,
		Target:  target,
		FovyDeg: fovyDeg,
		Aspect:  aspect,
		Near:    near,
		Far:     far,
		ViewW:   viewW,
		ViewH:   viewH,
	}
	p.forward = target.Sub(eye).Normalize()
	worldUp := Vec3{0, 1, 0}
	if p.forward.Cross(worldUp).Length() < 1e-6 {
		worldUp = Vec3{0, 0, -1}
	}
	p.right = p.forward.Cross(worldUp).Normalize()
	p.up = p.right.Cross(p.forward)
	p.halfTanY = math32.Tan(fovyDeg * math32.Pi / 360)
	return p
}

// Project maps a world point to viewport pixels. ok is false when the point
// lies outside the near/far range or the camera is degenerate.
func (p Perspective) Project(v Vec3) (x, y float32, ok bool) {
	if p.halfTanY <= 0 || p.Aspect <= 0 {
		return 0, 0, false
	}
	d := v.Sub(p.Eye)
	depth := d.Dot(p.forward)
	if depth < p.Near || depth > p.Far {
		return 0, 0, false
	}
	ndcX := d.Dot(p.right) / (depth * p.halfTanY * p.Aspect)
	ndcY := d.Dot(p.up) / (depth * p.halfTanY)
	return (ndcX + 1) / 2 * p.ViewW, (1 - ndcY) / 2 * p.ViewH, true
}
