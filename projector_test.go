package cloth

import (
	"math"
	"testing"
)

func nearVec2(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestProjectorFrontView(t *testing.T) {
	p := NewProjector(0, 120)
	got, w := p.Project(Vec3{X: 100, Y: 50, Z: 10})
	if !nearVec2(got, Vec2{X: 100, Y: 50 - 10*Parallax}, 1e-12) {
		t.Errorf("Project = %+v", got)
	}
	if math.Abs(w-10) > 1e-12 {
		t.Errorf("depth = %v, want 10", w)
	}
}

func TestProjectorPivotIsFixed(t *testing.T) {
	for _, angle := range []float64{-90, -30, 0, 15, 45, 180} {
		p := NewProjector(angle, 300)
		got, _ := p.Project(Vec3{X: 300, Y: 80, Z: 0})
		if !nearVec2(got, Vec2{X: 300, Y: 80}, 1e-9) {
			t.Errorf("angle %v: pivot projects to %+v", angle, got)
		}
	}
}

func TestProjectorQuarterTurn(t *testing.T) {
	p := NewProjector(90, 100)
	// u = 20, z = 4: uRot = z, wRot = -u.
	got, w := p.Project(Vec3{X: 120, Y: 50, Z: 4})
	if !nearVec2(got, Vec2{X: 104, Y: 50 + 20*Parallax}, 1e-9) {
		t.Errorf("Project = %+v", got)
	}
	if math.Abs(w+20) > 1e-9 {
		t.Errorf("depth = %v, want -20", w)
	}
}

func TestProjectorAccessors(t *testing.T) {
	p := NewProjector(30, 42)
	if p.Angle() != 30 || p.PivotX() != 42 {
		t.Errorf("Angle=%v PivotX=%v", p.Angle(), p.PivotX())
	}
}

func TestProjectorPreservesPlanarDistanceAtZeroDepth(t *testing.T) {
	p := NewProjector(37, 0)
	a, _ := p.Project(Vec3{X: 10, Y: 0, Z: 0})
	b, _ := p.Project(Vec3{X: 20, Y: 0, Z: 0})
	// Horizontal spans foreshorten by cos(angle).
	want := 10 * math.Cos(37*math.Pi/180)
	if math.Abs((b.X-a.X)-want) > 1e-9 {
		t.Errorf("span = %v, want %v", b.X-a.X, want)
	}
}
