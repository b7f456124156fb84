package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box.
// Sprites live in the z=0 plane, so overlap tests only look at X and Y.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB builds a box of the given full width and height around center
func NewAABB(center mgl64.Vec3, width, height float64) AABB {
	half := mgl64.Vec3{width / 2, height / 2, 0}
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) HalfExtents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps reports whether the centers are closer than the summed half-extents plus tolerance on both axes
func (a AABB) Overlaps(other AABB, tolerance float64) bool {
	penetration := a.Penetration(other)
	return penetration.X() > -tolerance && penetration.Y() > -tolerance
}

// Penetration returns the overlap depth per axis. Negative components mean the boxes are apart on that axis.
func (a AABB) Penetration(other AABB) mgl64.Vec2 {
	delta := a.Center().Sub(other.Center())
	sum := a.HalfExtents().Add(other.HalfExtents())

	return mgl64.Vec2{
		sum.X() - math.Abs(delta.X()),
		sum.Y() - math.Abs(delta.Y()),
	}
}
