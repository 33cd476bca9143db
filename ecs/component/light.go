package component

import "image/color"

type AmbientLight struct {
	Color     color.Color
	Intensity float64
}

var AmbientLightComponent = NewComponent[AmbientLight]()

// DirectionalLight shines from its Transform towards the origin.
type DirectionalLight struct {
	Color      color.Color
	Intensity  float64
	CastShadow bool
}

var DirectionalLightComponent = NewComponent[DirectionalLight]()
