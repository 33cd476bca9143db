package render

import (
	"fmt"
	"image"
	"sync"

	"github.com/milk9111/dispfade/assets"
	"github.com/milk9111/dispfade/ecs/component"
	"golang.org/x/image/draw"
)

// LoadResult is one finished texture load.
type LoadResult struct {
	Slot  component.TextureSlot
	Path  string
	Image image.Image
	Err   error
}

// Loader decodes textures off the game loop. Every image is resampled to
// the loader's size so the shader sees equally sized sources.
type Loader struct {
	width   int
	height  int
	decode  func(path string) (image.Image, error)
	results chan LoadResult
	wg      sync.WaitGroup
}

func NewLoader(width, height int) *Loader {
	return &Loader{
		width:   width,
		height:  height,
		decode:  assets.DecodeImage,
		results: make(chan LoadResult, component.TextureSlotCount*2),
	}
}

// Load starts decoding path for slot in the background.
func (l *Loader) Load(slot component.TextureSlot, path string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.LoadNow(path)
		l.results <- LoadResult{Slot: slot, Path: path, Image: img, Err: err}
	}()
}

// LoadNow decodes and resamples path on the calling goroutine.
func (l *Loader) LoadNow(path string) (image.Image, error) {
	key := fmt.Sprintf("%s@%dx%d", path, l.width, l.height)
	if img := GetImage(key); img != nil {
		return img, nil
	}
	src, err := l.decode(path)
	if err != nil {
		return nil, fmt.Errorf("render: load %s: %w", path, err)
	}
	img := Resample(src, l.width, l.height)
	RegisterImage(key, img)
	return img, nil
}

// Poll returns the loads finished since the last call without blocking.
func (l *Loader) Poll() []LoadResult {
	var out []LoadResult
	for {
		select {
		case r := <-l.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until every started load has delivered its result.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Resample scales src to width x height with bilinear filtering. src is
// returned as is when it already has that size.
func Resample(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	if width <= 0 || height <= 0 || (b.Dx() == width && b.Dy() == height) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
