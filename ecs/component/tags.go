package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type TransitionMeshTag struct{}

var TransitionMeshTagComponent = NewComponent[TransitionMeshTag]()
