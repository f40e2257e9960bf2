package cloth

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestGame(t *testing.T, cfg RunConfig) *Game {
	t.Helper()
	if cfg.Mesh == (MeshConfig{}) {
		cfg.Mesh = smallMeshConfig()
	}
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	if g.Settings().Load() != DefaultSettings() {
		t.Errorf("settings = %+v", g.Settings().Load())
	}
	if g.Sim().Solver().Config().Iterations != DefaultIterations {
		t.Error("solver not defaulted")
	}
	if g.Runner() != nil {
		t.Error("runner set without a script")
	}
	if g.Input() == nil || g.snap == nil {
		t.Error("input or initial snapshot missing")
	}
}

func TestNewGameSize(t *testing.T) {
	g := newTestGame(t, RunConfig{Width: 640, Height: 480})
	set := g.Settings().Load()
	if set.Width != 640 || set.Height != 480 {
		t.Errorf("bounds = %vx%v, want 640x480", set.Width, set.Height)
	}
}

func TestNewGameClampsSettings(t *testing.T) {
	set := DefaultSettings()
	set.CutDepth = 4
	g := newTestGame(t, RunConfig{Settings: set})
	if got := g.Settings().Load().CutDepth; got != 1 {
		t.Errorf("CutDepth = %v, want 1", got)
	}
}

func TestNewGameSharedStore(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	g := newTestGame(t, RunConfig{Store: store})
	if g.Settings() != store {
		t.Fatal("Store not used")
	}
	store.Update(func(s *Settings) { s.Tension = 0.4 })
	if g.Settings().Load().Tension != 0.4 {
		t.Error("external write not visible")
	}
}

func TestNewGameBadScript(t *testing.T) {
	if _, err := NewGame(RunConfig{Mesh: smallMeshConfig(), TestScript: []byte(`{`)}); err == nil {
		t.Error("expected error for invalid script")
	}
}

func TestGameLayoutTracksWindow(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	set := g.Settings().Load()
	if set.Width != 800 || set.Height != 600 {
		t.Errorf("bounds = %vx%v, want 800x600", set.Width, set.Height)
	}
}

func TestGameUpdateCutsWithDrawnView(t *testing.T) {
	set := DefaultSettings()
	set.GravityEnabled = false
	g := newTestGame(t, RunConfig{Settings: set})

	// Head-on this stroke cuts the lattice; side-on it misses entirely.
	g.Input().InjectPress(135, 95)
	g.Input().InjectMove(135, 135)
	g.Input().InjectRelease(135, 135)
	g.Update()
	g.Update()
	if g.sim.Stats().Broken != 0 {
		t.Fatal("stroke cut before release")
	}

	// The view swings to 90° within the releasing tick.
	g.controls.viewTween = TweenViewAngle(g.Settings().Load(), 90, 0.001, ease.Linear)
	g.Update()

	if got := g.Settings().Load().ViewAngle; got != 90 {
		t.Fatalf("ViewAngle = %v, want 90", got)
	}
	if g.sim.Stats().Broken == 0 {
		t.Error("release was cut with the next frame's view")
	}
}
