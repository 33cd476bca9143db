// Command frames renders one period of the transition timeline to PNG files
// with the CPU rendition of the shader.
package main

import (
	"flag"
	"log"
)

func main() {
	specName := flag.String("spec", "effect.yaml", "effect spec in prefabs/")
	out := flag.String("out", "frames", "output directory")
	frames := flag.Int("frames", 72, "frames to render over one timeline period")
	width := flag.Int("width", 450, "frame width in pixels")
	height := flag.Int("height", 600, "frame height in pixels")
	flag.Parse()

	paths, err := renderFrames(options{
		SpecName: *specName,
		OutDir:   *out,
		Frames:   *frames,
		Width:    *width,
		Height:   *height,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", len(paths), *out)
}
