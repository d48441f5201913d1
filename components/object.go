package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the presentation transform. It is derived from the rigid
// body every frame and never written back.
type TransformData struct {
	Position     mgl64.Vec3
	Rotation     mgl64.Quat
	VisualOffset mgl64.Vec3 // mesh pivot relative to the body centre
}

// Matrix returns the model matrix of the presentation transform.
func (t *TransformData) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

var Transform = donburi.NewComponentType[TransformData]()
