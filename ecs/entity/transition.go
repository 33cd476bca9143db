package entity

import (
	"fmt"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/prefabs"
	"github.com/milk9111/dispfade/tween"
)

const (
	defaultTextureWidth  = 600
	defaultTextureHeight = 800
)

// TextureRequest is one texture the transition mesh needs loaded.
type TextureRequest struct {
	Slot component.TextureSlot
	Path string
}

// NewTransitionMesh creates the textured plane with its shader material and
// timeline. Textures are not loaded here; TextureRequests lists them for the
// loader.
func NewTransitionMesh(w *ecs.World, spec *prefabs.EffectSpec) (ecs.Entity, error) {
	tl, err := BuildTimeline(spec.Timeline)
	if err != nil {
		return 0, fmt.Errorf("transition: failed to build timeline: %w", err)
	}

	entity := w.CreateEntity()
	if err := ecs.Add(w, entity, component.TransitionMeshTagComponent.Kind(), &component.TransitionMeshTag{}); err != nil {
		return 0, fmt.Errorf("transition: failed to add mesh tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Mesh.Transform.X,
		Y: spec.Mesh.Transform.Y,
		Z: spec.Mesh.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("transition: failed to add transform component: %w", err)
	}

	width, height := spec.Mesh.Width, spec.Mesh.Height
	if width <= 0 {
		width = 6
	}
	if height <= 0 {
		height = 8
	}
	if err := ecs.Add(w, entity, component.PlaneMeshComponent.Kind(), &component.PlaneMesh{
		Width:  width,
		Height: height,
	}); err != nil {
		return 0, fmt.Errorf("transition: failed to add plane mesh component: %w", err)
	}

	texW, texH := spec.Material.TextureWidth, spec.Material.TextureHeight
	if texW <= 0 || texH <= 0 {
		texW, texH = defaultTextureWidth, defaultTextureHeight
	}
	if err := ecs.Add(w, entity, component.ShaderMaterialComponent.Kind(), &component.ShaderMaterial{
		TextureWidth:   texW,
		TextureHeight:  texH,
		Transition:     tl.Value(0),
		DirectCoupling: spec.Material.DirectCoupling,
	}); err != nil {
		return 0, fmt.Errorf("transition: failed to add shader material component: %w", err)
	}

	_, phase := tl.Phase(0)
	if err := ecs.Add(w, entity, component.TimelineComponent.Kind(), &component.Timeline{
		Timeline: tl,
		Phase:    phase,
	}); err != nil {
		return 0, fmt.Errorf("transition: failed to add timeline component: %w", err)
	}

	return entity, nil
}

// TextureRequests lists the material textures in slot order.
func TextureRequests(spec *prefabs.EffectSpec) []TextureRequest {
	m := spec.Material
	return []TextureRequest{
		{Slot: component.SlotCurrent, Path: orDefault(m.CurrentTexture, "img01.png")},
		{Slot: component.SlotNext, Path: orDefault(m.NextTexture, "img02.png")},
		{Slot: component.SlotDisplacement, Path: orDefault(m.DisplacementMap, "noise02.png")},
	}
}

// BuildTimeline turns a timeline spec into a tween.Timeline. An empty step
// list gives the default rise and fall loop.
func BuildTimeline(spec prefabs.TimelineSpec) (*tween.Timeline, error) {
	steps := spec.Steps
	repeat := spec.Repeat
	if len(steps) == 0 {
		steps = []prefabs.StepSpec{
			{Name: "rising", To: 1, Delay: 0.6, Duration: 3, Ease: "power4.out"},
			{Name: "falling", To: 0, Delay: 0.6, Duration: 3, Ease: "power4.out"},
		}
		repeat = -1
	}

	tl := &tween.Timeline{From: spec.From, Repeat: repeat}
	for i, s := range steps {
		if s.Delay < 0 || s.Duration < 0 {
			return nil, fmt.Errorf("step %d: negative timing", i)
		}
		ease, err := resolveEase(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("step_%d", i)
		}
		tl.Steps = append(tl.Steps, tween.Step{
			Name:     name,
			To:       s.To,
			Delay:    s.Delay,
			Duration: s.Duration,
			Ease:     ease,
		})
	}

	return tl, nil
}

func resolveEase(s prefabs.StepSpec) (tween.EaseFunc, error) {
	script, ok := s.ScriptEase()
	if !ok {
		return tween.ParseEase(s.Ease)
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("load ease script %s: %w", script, err)
	}
	return tween.ScriptEase(script, src)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
