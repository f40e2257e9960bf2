package cloth

// Default lattice dimensions.
const (
	DefaultCols     = 80
	DefaultRows     = 60
	DefaultSpacing  = 8.0
	DefaultLayers   = 6
	DefaultLayerGap = 4.0
)

// DefaultOrigin is the world position of the top-left particle.
var DefaultOrigin = Vec2{X: 140, Y: 80}

// MeshConfig describes the lattice built by BuildMesh.
type MeshConfig struct {
	// Cols and Rows count grid cells; each layer has (Rows+1)×(Cols+1)
	// particles.
	Cols, Rows int
	// Spacing is the rest distance between horizontally or vertically
	// adjacent particles.
	Spacing float64
	// Origin is the world position of particle 0 of every layer.
	Origin Vec2
	// Layers is the number of depth slices (at least 1).
	Layers int
	// LayerGap is the depth distance between adjacent slices.
	LayerGap float64
}

// DefaultMeshConfig returns the 80×60 cell, six-layer configuration.
func DefaultMeshConfig() MeshConfig {
	return MeshConfig{
		Cols:     DefaultCols,
		Rows:     DefaultRows,
		Spacing:  DefaultSpacing,
		Origin:   DefaultOrigin,
		Layers:   DefaultLayers,
		LayerGap: DefaultLayerGap,
	}
}

// withDefaults fills zero or negative dimensions from DefaultMeshConfig.
// Origin is taken as given.
func (c MeshConfig) withDefaults() MeshConfig {
	if c.Cols <= 0 {
		c.Cols = DefaultCols
	}
	if c.Rows <= 0 {
		c.Rows = DefaultRows
	}
	if c.Spacing <= 0 {
		c.Spacing = DefaultSpacing
	}
	if c.Layers <= 0 {
		c.Layers = DefaultLayers
	}
	if c.LayerGap <= 0 {
		c.LayerGap = DefaultLayerGap
	}
	return c
}

// BuildMesh constructs every layer and the volume struts between them in one
// step. The returned mesh shares nothing with any previously built mesh.
func BuildMesh(cfg MeshConfig) *Mesh {
	cfg = cfg.withDefaults()

	m := &Mesh{
		cfg:    cfg,
		layers: make([]Layer, cfg.Layers),
	}
	for d := range m.layers {
		buildLayer(&m.layers[d], d, cfg)
	}
	m.connectLayers()
	m.pivotX = m.computePivot()
	return m
}

// buildLayer fills one slice: particles first, then structural cells, then
// skip-one bending constraints.
func buildLayer(l *Layer, depth int, cfg MeshConfig) {
	stride := cfg.Cols + 1
	l.Index = depth
	l.Z = float64(depth) * cfg.LayerGap
	l.Field = newParticleField(cfg.Rows+1, stride)

	for y := 0; y <= cfg.Rows; y++ {
		for x := 0; x <= cfg.Cols; x++ {
			px := cfg.Origin.X + float64(x)*cfg.Spacing
			py := cfg.Origin.Y + float64(y)*cfg.Spacing
			l.Field.particles = append(l.Field.particles, Particle{
				X: px, Y: py, Z: l.Z,
				PrevX: px, PrevY: py,
				Pinned: x == 0 || x == cfg.Cols,
			})
		}
	}

	link := func(i, j int) {
		a := &l.Field.particles[i]
		b := &l.Field.particles[j]
		l.Constraints.add(Constraint{
			P1:         ParticleRef{Layer: depth, Index: i},
			P2:         ParticleRef{Layer: depth, Index: j},
			RestLength: dist2D(a.X, a.Y, b.X, b.Y),
			Depth:      depth,
		})
	}

	// Two triangles per cell.
	for y := 0; y < cfg.Rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			i := y*stride + x
			right := i + 1
			down := i + stride
			downRight := i + stride + 1

			link(i, right)
			link(i, down)
			link(i, downRight)
			link(right, down)
		}
	}

	// Bending: skip one particle to the right and below.
	for y := 0; y <= cfg.Rows; y++ {
		for x := 0; x <= cfg.Cols; x++ {
			i := y*stride + x
			if x+2 <= cfg.Cols {
				link(i, i+2)
			}
			if y+2 <= cfg.Rows {
				link(i, i+2*stride)
			}
		}
	}
}

// connectLayers adds a volume strut between every pair of corresponding
// particles in adjacent layers.
func (m *Mesh) connectLayers() {
	for d := 0; d < len(m.layers)-1; d++ {
		front := m.layers[d].Field
		back := m.layers[d+1].Field
		for i := range front.particles {
			a := &front.particles[i]
			b := &back.particles[i]
			m.volume.add(Constraint{
				P1:         ParticleRef{Layer: d, Index: i},
				P2:         ParticleRef{Layer: d + 1, Index: i},
				RestLength: dist2D(a.X, a.Y, b.X, b.Y),
				Depth:      d,
				Volume:     true,
			})
		}
	}
}

// computePivot returns the horizontal midpoint of the front layer.
func (m *Mesh) computePivot() float64 {
	pts := m.layers[0].Field.particles
	if len(pts) == 0 {
		return 0
	}
	minX, maxX := pts[0].X, pts[0].X
	for i := 1; i < len(pts); i++ {
		x := pts[i].X
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	return (minX + maxX) / 2
}
