package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/ecs/entity"
	"github.com/milk9111/dispfade/ecs/render"
	"github.com/milk9111/dispfade/ecs/system"
	"github.com/milk9111/dispfade/prefabs"
	"golang.org/x/image/draw"
)

type options struct {
	SpecName string
	OutDir   string
	Frames   int
	Width    int
	Height   int
}

// renderFrames samples the timeline evenly over one period, starting at 0,
// and writes frame_NNNN.png for each sample.
func renderFrames(opts options) ([]string, error) {
	if opts.Frames <= 0 || opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("frames: frames, width and height must be positive")
	}

	spec, err := prefabs.LoadEffectSpec(opts.SpecName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec, float64(opts.Width), float64(opts.Height))
	if err != nil {
		return nil, fmt.Errorf("frames: build scene: %w", err)
	}

	mat, _ := ecs.Get(w, scene.Mesh, component.ShaderMaterialComponent.Kind())
	tl, _ := ecs.Get(w, scene.Mesh, component.TimelineComponent.Kind())
	surface, _ := ecs.Get(w, scene.Surface, component.SurfaceComponent.Kind())

	loader := render.NewLoader(mat.TextureWidth, mat.TextureHeight)
	for _, req := range entity.TextureRequests(spec) {
		img, err := loader.LoadNow(req.Path)
		if err != nil {
			return nil, fmt.Errorf("frames: %s: %w", req.Slot, err)
		}
		mat.Pixels[req.Slot] = img
	}
	inputs := system.NewCPUInputs(mat.Pixels)

	quad, ok := system.ProjectMesh(w, scene.Mesh, float32(opts.Width), float32(opts.Height))
	if !ok {
		return nil, fmt.Errorf("frames: mesh is outside the camera's view")
	}
	frame := image.Rect(0, 0, opts.Width, opts.Height)
	area := quad.Bounds().Intersect(frame)

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}

	timeline := &system.TimelineSystem{Step: tl.Timeline.CycleDuration() / float64(opts.Frames)}
	paths := make([]string, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		dst := image.NewRGBA(frame)
		draw.Draw(dst, frame, image.NewUniform(surface.ClearColor), image.Point{}, draw.Src)

		inputs.Transition = float32(mat.Transition)
		inputs.DirectCoupling = mat.DirectCoupling
		if !area.Empty() {
			system.RenderQuad(dst.SubImage(area).(*image.RGBA), quad, inputs.Inputs)
		}

		path := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, dst); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		timeline.Update(w)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("frames: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("frames: encode %s: %w", path, err)
	}
	return f.Close()
}
