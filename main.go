package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dispfade/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hud, hot reload of prefabs/)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	specName := flag.String("spec", prefabs.EffectFile, "effect spec in prefabs/")
	cpu := flag.Bool("cpu", false, "render with the cpu fallback instead of the shader")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("dispfade")

	game, err := NewGame(*specName, float64(w), float64(h), *debug)
	if err != nil {
		log.Fatal(err)
	}
	game.render.ForceCPU = *cpu

	if err := run(game, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// run plays the game and releases its resources however the loop ends.
func run(game *Game, runGame func(ebiten.Game) error) error {
	defer game.Close()
	return runGame(game)
}
