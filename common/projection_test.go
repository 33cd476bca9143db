package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspectiveProjectsPlaneCorners(t *testing.T) {
	p := NewPerspective(Vec3{0, 0, 10.5}, Vec3{}, 60, 1280.0/720.0, 0.01, 200000, 1280, 720)

	halfH := 10.5 * math32.Tan(math32.Pi/6)
	wantTop := (1 - 4/halfH) / 2 * 720
	wantLeft := (1 - 3/(halfH*1280.0/720.0)) / 2 * 1280

	x, y, ok := p.Project(Vec3{-3, 4, 0})
	require.True(t, ok)
	assert.InDelta(t, wantLeft, x, 1e-3)
	assert.InDelta(t, wantTop, y, 1e-3)

	x, y, ok = p.Project(Vec3{3, -4, 0})
	require.True(t, ok)
	assert.InDelta(t, 1280-wantLeft, x, 1e-3)
	assert.InDelta(t, 720-wantTop, y, 1e-3)

	x, y, ok = p.Project(Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-3)
	assert.InDelta(t, 360, y, 1e-3)
}

func TestPerspectiveClipsNearFar(t *testing.T) {
	p := NewPerspective(Vec3{0, 0, 10.5}, Vec3{}, 60, 1, 1, 20, 100, 100)

	_, _, ok := p.Project(Vec3{0, 0, 10})
	assert.False(t, ok, "closer than near")
	_, _, ok = p.Project(Vec3{0, 0, -10})
	assert.False(t, ok, "beyond far")
	_, _, ok = p.Project(Vec3{0, 0, 11})
	assert.False(t, ok, "behind camera")
}

func TestPerspectiveLookingStraightDown(t *testing.T) {
	p := NewPerspective(Vec3{0, 10, 0}, Vec3{}, 90, 1, 0.1, 100, 200, 200)
	x, y, ok := p.Project(Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 100, y, 1e-3)
}

func TestMod(t *testing.T) {
	assert.InDelta(t, 0.25, Mod(-0.75, 1), 1e-6)
	assert.InDelta(t, 0.5, Mod(2.5, 1), 1e-6)
	assert.InDelta(t, 0.75, Fract(-0.25), 1e-6)
	assert.Equal(t, float32(1), Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp01(-2))
}
