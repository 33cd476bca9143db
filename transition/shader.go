// Package transition holds the displacement wipe: the Kage program that runs
// on the GPU and a CPU rendition of the same per-pixel math.
package transition

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Uniform names declared in transition.kage.
const (
	UniformTransition     = "Transition"
	UniformDirectCoupling = "DirectCoupling"
)

// The shader reads the current image, the next image and the displacement
// map from these source slots.
const (
	ImageCurrent      = 0
	ImageNext         = 1
	ImageDisplacement = 2
)

//go:embed transition.kage
var shaderSource []byte

// ShaderSource returns the Kage source of the transition program.
func ShaderSource() []byte {
	return append([]byte(nil), shaderSource...)
}

func NewShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("transition: compile shader: %w", err)
	}
	return s, nil
}

// Uniforms builds the uniform map for one draw.
func Uniforms(t float64, directCoupling bool) map[string]any {
	direct := float32(0)
	if directCoupling {
		direct = 1
	}
	return map[string]any{
		UniformTransition:     float32(t),
		UniformDirectCoupling: direct,
	}
}
