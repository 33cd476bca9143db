package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dispfade/common"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
)

// TimelineSystem advances every timeline and writes its value into the
// material on the same entity. It is the only writer of Transition after
// setup.
type TimelineSystem struct {
	// Step is the seconds added per update. Zero means one tick at the
	// current TPS.
	Step float64
}

func NewTimelineSystem() *TimelineSystem {
	return &TimelineSystem{}
}

func (ts *TimelineSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	dt := ts.Step
	if dt <= 0 {
		dt = 1 / float64(ebiten.TPS())
	}

	ecs.ForEach2(w, component.TimelineComponent.Kind(), component.ShaderMaterialComponent.Kind(), func(_ ecs.Entity, tl *component.Timeline, mat *component.ShaderMaterial) {
		if tl.Timeline == nil {
			return
		}
		tl.Elapsed += dt
		mat.Transition = common.Clamp01(tl.Timeline.Value(tl.Elapsed))
		_, tl.Phase = tl.Timeline.Phase(tl.Elapsed)
	})
}
