package cloth

import "fmt"

// Layer is one depth slice: a particle field plus its structural and bending
// constraints.
type Layer struct {
	Index       int
	Z           float64
	Field       *ParticleField
	Constraints ConstraintMesh
}

// Mesh is the full volumetric lattice: every layer and the volume struts that
// link adjacent layers. A Mesh is built once by BuildMesh and then only has
// constraints flipped to broken; reset replaces the whole Mesh.
type Mesh struct {
	cfg    MeshConfig
	layers []Layer
	volume ConstraintMesh
	pivotX float64

	// projBuf caches projected particle positions for the duration of a cut.
	projBuf [][]Vec2
}

// Config returns the configuration the mesh was built with.
func (m *Mesh) Config() MeshConfig {
	return m.cfg
}

// LayerCount returns the number of depth layers.
func (m *Mesh) LayerCount() int {
	return len(m.layers)
}

// Layer returns layer d. An out-of-range index panics.
func (m *Mesh) Layer(d int) *Layer {
	if d < 0 || d >= len(m.layers) {
		panic(fmt.Sprintf("cloth: layer %d out of range [0,%d)", d, len(m.layers)))
	}
	return &m.layers[d]
}

// Volume returns the volume strut set.
func (m *Mesh) Volume() *ConstraintMesh {
	return &m.volume
}

// PivotX returns the horizontal projection pivot computed at build time.
func (m *Mesh) PivotX() float64 {
	return m.pivotX
}

// Particle resolves a reference. An out-of-range reference panics.
func (m *Mesh) Particle(ref ParticleRef) *Particle {
	return m.Layer(ref.Layer).Field.At(ref.Index)
}

// ParticleCount returns the number of particles across all layers.
func (m *Mesh) ParticleCount() int {
	n := 0
	for i := range m.layers {
		n += m.layers[i].Field.Len()
	}
	return n
}

// ConstraintCount returns the number of constraints including volume struts.
func (m *Mesh) ConstraintCount() int {
	n := m.volume.Len()
	for i := range m.layers {
		n += m.layers[i].Constraints.Len()
	}
	return n
}

// BrokenCount returns the number of cut constraints including volume struts.
func (m *Mesh) BrokenCount() int {
	n := m.volume.BrokenCount()
	for i := range m.layers {
		n += m.layers[i].Constraints.BrokenCount()
	}
	return n
}

// validate checks every constraint reference. Structural constraints must
// stay inside their layer and volume struts must link Depth to Depth+1.
// Violations are programming errors and panic.
func (m *Mesh) validate() {
	for d := range m.layers {
		l := &m.layers[d]
		for i := range l.Constraints.constraints {
			c := &l.Constraints.constraints[i]
			if c.P1.Layer != d || c.P2.Layer != d || c.Depth != d {
				panic(fmt.Sprintf("cloth: constraint %d of layer %d references layers %d/%d", i, d, c.P1.Layer, c.P2.Layer))
			}
			l.Field.At(c.P1.Index)
			l.Field.At(c.P2.Index)
		}
	}
	for i := range m.volume.constraints {
		c := &m.volume.constraints[i]
		if c.P1.Layer != c.Depth || c.P2.Layer != c.Depth+1 {
			panic(fmt.Sprintf("cloth: volume strut %d links layers %d/%d at depth %d", i, c.P1.Layer, c.P2.Layer, c.Depth))
		}
		m.Particle(c.P1)
		m.Particle(c.P2)
	}
}
