package cloth

import "math"

// Parallax is the fraction of rotated depth subtracted from the screen Y
// coordinate.
const Parallax = 0.18

// Projector maps world positions to screen positions. The rendering path and
// the cut hit-test must use the same Projector so that what is drawn is
// exactly what is tested.
type Projector struct {
	angleDeg float64
	pivotX   float64
	cos, sin float64
}

// NewProjector returns a projector rotating the (x, z) plane by angleDeg
// degrees around the vertical axis through pivotX.
func NewProjector(angleDeg, pivotX float64) Projector {
	rad := angleDeg * math.Pi / 180
	return Projector{
		angleDeg: angleDeg,
		pivotX:   pivotX,
		cos:      math.Cos(rad),
		sin:      math.Sin(rad),
	}
}

// Angle returns the view angle in degrees.
func (p Projector) Angle() float64 {
	return p.angleDeg
}

// PivotX returns the rotation pivot.
func (p Projector) PivotX() float64 {
	return p.pivotX
}

// Project returns the screen position of v and its rotated depth, used for
// shading and z-ordering.
func (p Projector) Project(v Vec3) (Vec2, float64) {
	return p.project(v.X, v.Y, v.Z)
}

func (p Projector) project(x, y, z float64) (Vec2, float64) {
	u := x - p.pivotX
	uRot := u*p.cos + z*p.sin
	wRot := -u*p.sin + z*p.cos
	return Vec2{X: p.pivotX + uRot, Y: y - wRot*Parallax}, wRot
}
