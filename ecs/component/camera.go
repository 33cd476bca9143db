package component

// PerspectiveCamera projects the scene onto the surface. Aspect is written
// at setup and by the resize system only.
type PerspectiveCamera struct {
	Fovy    float64 // degrees
	Aspect  float64
	Near    float64
	Far     float64
	LookAtX float64
	LookAtY float64
	LookAtZ float64
}

var PerspectiveCameraComponent = NewComponent[PerspectiveCamera]()
