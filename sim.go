package cloth

import (
	"log/slog"
	"time"
)

// maxCatchUpTicks bounds how many ticks Advance runs for one call, so a long
// stall does not freeze the host while the simulation catches up.
const maxCatchUpTicks = 5

// Stats reports the current size and state of the simulation.
type Stats struct {
	Frame       uint64
	Layers      int
	Particles   int
	Constraints int
	Broken      int
}

// Sim is the top-level object that owns the mesh, the solver, the in-progress
// cut path and the snapshot buffers. It is driven by a host scheduler and is
// not safe for concurrent use; cuts and resets must happen between ticks.
type Sim struct {
	meshCfg MeshConfig
	solver  *Solver
	mesh    *Mesh
	store   EventSink
	debug   bool

	frame uint64
	accum float64

	path     []Vec2
	dragging bool

	snap Snapshot
}

// NewSim builds a mesh from meshCfg and a solver from solverCfg.
func NewSim(meshCfg MeshConfig, solverCfg SolverConfig) *Sim {
	s := &Sim{
		meshCfg: meshCfg.withDefaults(),
		solver:  NewSolver(solverCfg),
	}
	s.mesh = BuildMesh(s.meshCfg)
	return s
}

// Mesh returns the current mesh. The pointer changes on Reset.
func (s *Sim) Mesh() *Mesh {
	return s.mesh
}

// Solver returns the solver.
func (s *Sim) Solver() *Solver {
	return s.solver
}

// Frame returns the number of ticks run since creation.
func (s *Sim) Frame() uint64 {
	return s.frame
}

// SetEventSink sets the optional event bridge.
func (s *Sim) SetEventSink(store EventSink) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, rebuilt meshes
// are validated and per-tick timings are logged at debug level.
func (s *Sim) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled {
		debugCheckMesh(s.mesh)
	}
}

// Reset discards the mesh and builds a new one. Any in-progress path is
// dropped.
func (s *Sim) Reset() {
	s.mesh = BuildMesh(s.meshCfg)
	if s.debug {
		debugCheckMesh(s.mesh)
	}
	s.path = s.path[:0]
	s.dragging = false

	Logger().Info("mesh reset",
		slog.Int("layers", s.mesh.LayerCount()),
		slog.Int("particles", s.mesh.ParticleCount()),
		slog.Int("constraints", s.mesh.ConstraintCount()),
	)
	s.emit(Event{
		Type:        EventReset,
		Particles:   s.mesh.ParticleCount(),
		Constraints: s.mesh.ConstraintCount(),
	})
}

// Step runs exactly one tick with set and returns a fresh snapshot.
func (s *Sim) Step(set Settings) *Snapshot {
	s.tick(set)
	return s.Snapshot()
}

// Advance accumulates dt seconds and runs as many fixed ticks as fit, up to
// a small catch-up limit, then returns a snapshot. Leftover time carries to
// the next call.
func (s *Sim) Advance(dt float64, set Settings) *Snapshot {
	step := 1 / float64(s.solver.cfg.TickRate)
	s.accum += dt
	n := 0
	for s.accum >= step && n < maxCatchUpTicks {
		s.tick(set)
		s.accum -= step
		n++
	}
	if n == maxCatchUpTicks && s.accum >= step {
		s.accum = 0
	}
	return s.Snapshot()
}

// tick integrates and relaxes the mesh once.
func (s *Sim) tick(set Settings) {
	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	s.solver.Integrate(s.mesh, set)

	if s.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.solver.Relax(s.mesh, set)
	s.frame++

	if s.debug {
		stats.relaxTime = time.Since(t0)
		stats.particles = s.mesh.ParticleCount()
		stats.constraints = s.mesh.ConstraintCount()
		stats.broken = s.mesh.BrokenCount()
		s.debugLog(stats)
	}
}

// Snapshot rebuilds the rendering view of the current state.
func (s *Sim) Snapshot() *Snapshot {
	s.snap.fill(s.mesh, s.frame, s.path, s.dragging)
	return &s.snap
}

// Projector returns the projector for set's view angle and the mesh pivot.
func (s *Sim) Projector(set Settings) Projector {
	return NewProjector(set.ViewAngle, s.mesh.pivotX)
}

// Stats reports counts for the current mesh.
func (s *Sim) Stats() Stats {
	return Stats{
		Frame:       s.frame,
		Layers:      s.mesh.LayerCount(),
		Particles:   s.mesh.ParticleCount(),
		Constraints: s.mesh.ConstraintCount(),
		Broken:      s.mesh.BrokenCount(),
	}
}

// --- Cut path ---

// BeginPath starts a new cut path at p, discarding any unfinished one.
func (s *Sim) BeginPath(p Vec2) {
	s.path = append(s.path[:0], p)
	s.dragging = true
	s.emit(Event{Type: EventPathStart, Point: p})
}

// ExtendPath appends p to the active path. Ignored when no path is active.
func (s *Sim) ExtendPath(p Vec2) {
	if !s.dragging {
		return
	}
	s.path = append(s.path, p)
}

// Dragging reports whether a path is in progress.
func (s *Sim) Dragging() bool {
	return s.dragging
}

// Path returns the in-progress path. The slice is reused.
func (s *Sim) Path() []Vec2 {
	return s.path
}

// FinalizePath cuts along the active path using set's cut depth and view
// angle, then clears the path. Without an active path it does nothing.
func (s *Sim) FinalizePath(set Settings) CutResult {
	if !s.dragging {
		return CutResult{}
	}
	s.dragging = false
	res := s.Cut(s.path, set)
	s.emit(Event{Type: EventPathEnd, Points: len(s.path), Depth: set.CutDepth, Cut: res})
	s.path = s.path[:0]
	return res
}

// Cut severs the constraints crossed by path at set.CutDepth, projected with
// set.ViewAngle. Paths shorter than two points are a no-op.
func (s *Sim) Cut(path []Vec2, set Settings) CutResult {
	res := s.mesh.Cut(path, set.CutDepth, s.Projector(set))
	if res.Segments == 0 {
		return res
	}
	Logger().Info("cut",
		slog.Int("segments", res.Segments),
		slog.Int("broken", res.Broken),
		slog.Int("maxLayer", res.MaxLayer),
		slog.Float64("depth", set.CutDepth),
	)
	if res.Broken > 0 {
		s.emit(Event{Type: EventCut, Points: len(path), Depth: set.CutDepth, Cut: res})
	}
	return res
}

func (s *Sim) emit(e Event) {
	if s.store == nil {
		return
	}
	e.Frame = s.frame
	s.store.EmitEvent(e)
}
