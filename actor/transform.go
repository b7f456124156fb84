package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places a sprite quad in world space
type Transform struct {
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	// Angle in radians around Axis
	Angle float64
	Axis  mgl64.Vec3

	model mgl64.Mat4
}

// NewTransform creates an identity transform rotating around +Y
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Scale:    mgl64.Vec3{1, 1, 1},
		Axis:     mgl64.Vec3{0, 1, 0},
		model:    mgl64.Ident4(),
	}
}

// Refresh recomputes the model matrix as T * R * S
func (t *Transform) Refresh() mgl64.Mat4 {
	model := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	if t.Angle != 0 && t.Axis.Len() > 0 {
		model = model.Mul4(mgl64.HomogRotate3D(t.Angle, t.Axis.Normalize()))
	}
	t.model = model.Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))

	return t.model
}

// Model returns the matrix computed by the last Refresh
func (t Transform) Model() mgl64.Mat4 {
	return t.model
}
