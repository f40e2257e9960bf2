package cloth

import (
	"log/slog"
	"time"
)

// debugStats holds per-tick timings. Only populated when Sim.debug is true.
type debugStats struct {
	integrateTime time.Duration
	relaxTime     time.Duration
	particles     int
	constraints   int
	broken        int
}

// debugLog writes tick timings at debug level.
func (s *Sim) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.integrateTime + stats.relaxTime
	Logger().Debug("tick",
		slog.Uint64("frame", s.frame),
		slog.Duration("integrate", stats.integrateTime),
		slog.Duration("relax", stats.relaxTime),
		slog.Duration("total", total),
		slog.Int("particles", stats.particles),
		slog.Int("constraints", stats.constraints),
		slog.Int("broken", stats.broken),
	)
}

// debugCheckMesh validates every constraint reference of a freshly built
// mesh. Only called in debug mode; invalid references panic.
func debugCheckMesh(m *Mesh) {
	m.validate()
}
