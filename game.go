package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/entity"
	"github.com/milk9111/dispfade/ecs/system"
	"github.com/milk9111/dispfade/prefabs"
)

type Game struct {
	world    *ecs.World
	scene    *entity.Scene
	specName string
	debug    bool

	resize  *system.ResizeSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher
	hud     *DebugUI

	outsideW, outsideH float64
}

func NewGame(specName string, width, height float64, debug bool) (*Game, error) {
	spec, err := prefabs.LoadEffectSpec(specName)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec, width, height)
	if err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}

	g := &Game{
		world:    world,
		scene:    scene,
		specName: specName,
		debug:    debug,
		resize:   system.NewResizeSystem(),
		render:   system.NewRenderSystem(),
	}

	// Update order: bind textures, advance the timeline, then draw.
	world.AddSystem(system.NewTextureSystem(entity.TextureRequests(spec)))
	world.AddSystem(system.NewTimelineSystem())
	world.AddSystem(g.resize)
	world.AddSystem(g.render)

	if debug {
		g.hud = NewDebugUI()
		watcher, err := prefabs.NewWatcher(prefabs.Dir(), filepath.Join(prefabs.Dir(), "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.watcher != nil {
		g.reload()
	}

	g.world.Update()

	if g.hud != nil {
		g.hud.Update(g)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)

	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// LayoutF sizes the backing buffer in device pixels and forwards size
// changes to the resize system.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	ratio := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.resize.Resize(g.world, outsideWidth, outsideHeight, ratio)
	}
	return outsideWidth * ratio, outsideHeight * ratio
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) reload() {
	select {
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("game: watcher: %v", err)
		}
	default:
	}

	if len(g.watcher.Poll()) == 0 {
		return
	}

	spec, err := prefabs.LoadEffectSpec(g.specName)
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	if err := entity.ApplySpec(g.world, g.scene, spec); err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	log.Printf("game: reloaded %s", g.specName)
}
