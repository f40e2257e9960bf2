package cloth

import "math"

// ParticleRef addresses a particle by layer and index within that layer's
// ParticleField.
type ParticleRef struct {
	Layer, Index int
}

// Constraint is a distance constraint ("stick") between two particles.
//
// Structural and bending constraints reference two particles of the same
// layer. Volume struts link index i of layer Depth to index i of layer
// Depth+1. RestLength is fixed at creation; Broken only ever goes from false
// to true and is cleared solely by rebuilding the mesh.
type Constraint struct {
	P1, P2     ParticleRef
	RestLength float64
	Depth      int
	Volume     bool
	Broken     bool
}

// ConstraintMesh is an ordered set of constraints. Relaxation visits them in
// slice order.
type ConstraintMesh struct {
	constraints []Constraint
}

// Len returns the number of constraints.
func (m *ConstraintMesh) Len() int {
	return len(m.constraints)
}

// At returns a pointer to constraint i.
func (m *ConstraintMesh) At(i int) *Constraint {
	return &m.constraints[i]
}

// Constraints returns the backing slice. Callers must treat it as read-only.
func (m *ConstraintMesh) Constraints() []Constraint {
	return m.constraints
}

// BrokenCount returns how many constraints have been cut.
func (m *ConstraintMesh) BrokenCount() int {
	n := 0
	for i := range m.constraints {
		if m.constraints[i].Broken {
			n++
		}
	}
	return n
}

func (m *ConstraintMesh) add(c Constraint) {
	m.constraints = append(m.constraints, c)
}

// relax applies one proportional correction to c. a and b are the resolved
// endpoints. Coincident endpoints are skipped for this pass.
func relax(c *Constraint, a, b *Particle, cfg *SolverConfig, tension float64) {
	if c.Broken {
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}

	diff := (cfg.TargetLength(c.RestLength, tension) - dist) / dist

	stiffness := cfg.Stiffness
	if c.Volume {
		stiffness = cfg.VolumeStiffness
	}
	offX := dx * diff * 0.5 * stiffness
	offY := dy * diff * 0.5 * stiffness

	if !a.Pinned {
		a.X -= offX
		a.Y -= offY
	}
	if !b.Pinned {
		b.X += offX
		b.Y += offY
	}
}
