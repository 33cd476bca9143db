package component

import "image/color"

// Surface is the output the scene is drawn to. Width and Height are in
// device-independent units; the backing buffer is scaled by PixelRatio.
type Surface struct {
	Width               float64
	Height              float64
	PixelRatio          float64
	ClearColor          color.Color
	ToneMapping         string
	ToneMappingExposure float64
	ShadowMap           bool

	// Ready flips once the displacement map has loaded; nothing is drawn
	// before that.
	Ready bool
}

var SurfaceComponent = NewComponent[Surface]()
