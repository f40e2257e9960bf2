package cloth

import "fmt"

// Particle is one point mass of the lattice. Velocity is implicit: the
// difference between the current and previous position.
type Particle struct {
	X, Y, Z      float64
	PrevX, PrevY float64
	Pinned       bool
}

// Pos returns the particle's world position.
func (p *Particle) Pos() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// update advances the particle by one tick. Pinned particles never move.
func (p *Particle) update(cfg *SolverConfig, set *Settings) {
	if p.Pinned {
		return
	}

	vx := (p.X - p.PrevX) * cfg.Damping
	vy := (p.Y - p.PrevY) * cfg.Damping

	if set.GravityEnabled {
		vy += cfg.Gravity * set.GravityMultiplier
	}

	vx -= vx * cfg.Drag
	vy -= vy * cfg.Drag

	p.PrevX = p.X
	p.PrevY = p.Y

	p.X += vx
	p.Y += vy

	// The far edge is applied last, so a window narrower than two margins
	// pins particles to width-margin.
	m := cfg.Margin
	if p.X < m {
		p.X = m
	}
	if p.X > set.Width-m {
		p.X = set.Width - m
	}
	if p.Y < m {
		p.Y = m
	}
	if p.Y > set.Height-m {
		p.Y = set.Height - m
	}
}

// ParticleField owns every particle of one depth layer. Constraints address
// its particles by index; the slice is never resized after construction.
type ParticleField struct {
	particles []Particle
	stride    int // particles per grid row
}

// newParticleField allocates a field for a rows×stride grid.
func newParticleField(rows, stride int) *ParticleField {
	return &ParticleField{
		particles: make([]Particle, 0, rows*stride),
		stride:    stride,
	}
}

// Len returns the number of particles in the field.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Stride returns the number of particles per grid row.
func (f *ParticleField) Stride() int {
	return f.stride
}

// At returns the particle at index i. An out-of-range index is a programming
// error and panics.
func (f *ParticleField) At(i int) *Particle {
	if i < 0 || i >= len(f.particles) {
		panic(fmt.Sprintf("cloth: particle index %d out of range [0,%d)", i, len(f.particles)))
	}
	return &f.particles[i]
}

// Particles returns the backing slice. Callers must treat it as read-only.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// integrate advances every particle in the field by one tick.
func (f *ParticleField) integrate(cfg *SolverConfig, set *Settings) {
	for i := range f.particles {
		f.particles[i].update(cfg, set)
	}
}
