package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// DebugUI is the -debug overlay: transition value, timeline phase and frame
// rates in the top-left corner.
type DebugUI struct {
	ui    *ebitenui.UI
	label *widget.Text
}

func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DebugUI{ui: &ebitenui.UI{Container: root}, label: label}
}

func (d *DebugUI) Update(g *Game) {
	d.label.Label = hudText(g.world, g.scene.Mesh, g.render.UsingCPU())
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}

func hudText(w *ecs.World, mesh ecs.Entity, cpu bool) string {
	transition, phase, elapsed := 0.0, "", 0.0
	if mat, ok := ecs.Get(w, mesh, component.ShaderMaterialComponent.Kind()); ok {
		transition = mat.Transition
	}
	if tl, ok := ecs.Get(w, mesh, component.TimelineComponent.Kind()); ok {
		phase = tl.Phase
		elapsed = tl.Elapsed
	}
	path := "shader"
	if cpu {
		path = "cpu"
	}
	return fmt.Sprintf("transition %.3f  %s  t=%.2fs\nTPS %.1f  FPS %.1f  %s",
		transition, phase, elapsed, ebiten.ActualTPS(), ebiten.ActualFPS(), path)
}
