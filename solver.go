package cloth

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Default solver constants.
const (
	DefaultIterations      = 14
	DefaultDamping         = 0.96
	DefaultDrag            = 0.002
	DefaultGravity         = 0.8
	DefaultStiffness       = 0.45
	DefaultVolumeStiffness = 0.28
	DefaultLoosen          = 0.35
	DefaultMargin          = 5.0
	DefaultTickRate        = 60
)

// SolverConfig holds the fixed physical constants of the simulation. Values a
// user tweaks at runtime live in Settings instead.
type SolverConfig struct {
	// Iterations is the number of relaxation passes per tick.
	Iterations int
	// Damping scales implicit velocity each tick (< 1 loses energy).
	Damping float64
	// Drag subtracts this fraction of velocity each tick.
	Drag float64
	// Gravity is the downward impulse per tick before the settings
	// multiplier.
	Gravity float64
	// Stiffness applies to structural and bending constraints.
	Stiffness float64
	// VolumeStiffness applies to volume struts. Softer so depth does not
	// fight planar draping.
	VolumeStiffness float64
	// Loosen is the maximum elongation fraction reached at tension 0.
	Loosen float64
	// Margin keeps particles this far inside the simulation bounds.
	Margin float64
	// TickRate is the number of ticks per second used by Advance.
	TickRate int
	// Parallel relaxes the layers concurrently. Layers share no particles
	// so the result matches the serial order exactly.
	Parallel bool
	// MaxWorkers bounds the goroutines used when Parallel is set
	// (default GOMAXPROCS).
	MaxWorkers int
}

// DefaultSolverConfig returns the reference constants.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Iterations:      DefaultIterations,
		Damping:         DefaultDamping,
		Drag:            DefaultDrag,
		Gravity:         DefaultGravity,
		Stiffness:       DefaultStiffness,
		VolumeStiffness: DefaultVolumeStiffness,
		Loosen:          DefaultLoosen,
		Margin:          DefaultMargin,
		TickRate:        DefaultTickRate,
	}
}

// withDefaults fills fields whose zero value would stall the solver.
// Drag, Gravity, Loosen and Margin may legitimately be zero.
func (c SolverConfig) withDefaults() SolverConfig {
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Damping <= 0 {
		c.Damping = DefaultDamping
	}
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultStiffness
	}
	if c.VolumeStiffness <= 0 {
		c.VolumeStiffness = DefaultVolumeStiffness
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = runtime.GOMAXPROCS(0)
	}
	return c
}

// TargetLength returns the length a constraint relaxes toward. At tension 1
// it equals rest; lower tension allows up to Loosen extra elongation.
func (c *SolverConfig) TargetLength(rest, tension float64) float64 {
	return rest * (1 + c.Loosen*(1-tension))
}

// Solver advances a Mesh: Verlet integration followed by relaxation passes.
type Solver struct {
	cfg SolverConfig
}

// NewSolver creates a solver. Zero fields that would stall the simulation are
// replaced with defaults.
func NewSolver(cfg SolverConfig) *Solver {
	return &Solver{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (s *Solver) Config() SolverConfig {
	return s.cfg
}

// Step runs one full tick: integrate then relax.
func (s *Solver) Step(m *Mesh, set Settings) {
	s.Integrate(m, set)
	s.Relax(m, set)
}

// Integrate advances every unpinned particle by one tick.
func (s *Solver) Integrate(m *Mesh, set Settings) {
	for d := range m.layers {
		m.layers[d].Field.integrate(&s.cfg, &set)
	}
}

// Relax runs the configured number of relaxation passes. Each pass visits
// the structural and bending constraints of every layer, then the volume
// struts.
func (s *Solver) Relax(m *Mesh, set Settings) {
	for k := 0; k < s.cfg.Iterations; k++ {
		if s.cfg.Parallel && len(m.layers) > 1 {
			s.relaxLayersParallel(m, set.Tension)
		} else {
			for d := range m.layers {
				s.relaxLayer(&m.layers[d], set.Tension)
			}
		}
		s.relaxVolume(m, set.Tension)
	}
}

// relaxLayer runs one pass over a layer's own constraints.
func (s *Solver) relaxLayer(l *Layer, tension float64) {
	pts := l.Field.particles
	cs := l.Constraints.constraints
	for i := range cs {
		c := &cs[i]
		relax(c, &pts[c.P1.Index], &pts[c.P2.Index], &s.cfg, tension)
	}
}

// relaxLayersParallel runs relaxLayer for every layer concurrently. The
// volume pass that follows acts as the fence between partitions.
func (s *Solver) relaxLayersParallel(m *Mesh, tension float64) {
	var g errgroup.Group
	g.SetLimit(s.cfg.MaxWorkers)
	for d := range m.layers {
		l := &m.layers[d]
		g.Go(func() error {
			s.relaxLayer(l, tension)
			return nil
		})
	}
	_ = g.Wait() // relaxLayer never fails
}

// relaxVolume runs one pass over the volume struts.
func (s *Solver) relaxVolume(m *Mesh, tension float64) {
	cs := m.volume.constraints
	for i := range cs {
		c := &cs[i]
		a := &m.layers[c.P1.Layer].Field.particles[c.P1.Index]
		b := &m.layers[c.P2.Layer].Field.particles[c.P2.Index]
		relax(c, a, b, &s.cfg, tension)
	}
}
