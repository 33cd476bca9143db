package component

// PlaneMesh is a flat rectangle centred on its Transform, facing +Z.
type PlaneMesh struct {
	Width  float64
	Height float64
}

var PlaneMeshComponent = NewComponent[PlaneMesh]()
