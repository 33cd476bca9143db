package component

import "github.com/milk9111/dispfade/tween"

// Timeline drives the ShaderMaterial transition on the same entity.
type Timeline struct {
	Timeline *tween.Timeline
	Elapsed  float64
	Phase    string
}

var TimelineComponent = NewComponent[Timeline]()
