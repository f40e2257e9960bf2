package cloth

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScreenshotDir = "screenshots"

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowHUD draws the settings and statistics overlay.
	ShowHUD bool
	// Debug validates rebuilt meshes and logs per-tick timings.
	Debug bool
	// ScreenshotDir receives PNGs from Game.Screenshot (default
	// "screenshots").
	ScreenshotDir string
	// TestScript, when set, is a JSON script driven by a TestRunner.
	TestScript []byte

	Mesh     MeshConfig
	Solver   SolverConfig
	Settings Settings
	// Store, when non-nil, is used instead of a store built from Settings,
	// so an external settings panel can publish values.
	Store *SettingsStore
}

// Game implements ebiten.Game for a cloth simulation. Each tick reads the
// settings store, applies controls and pointer input, runs one simulation
// step, and keeps the snapshot for Draw.
type Game struct {
	sim      *Sim
	store    *SettingsStore
	input    *Input
	controls *Controls
	renderer *Renderer
	hud      *HUD
	runner   *TestRunner
	snap     *Snapshot

	ScreenshotDir   string
	screenshotQueue []string
}

// NewGame creates a Game from cfg. It does not open a window.
func NewGame(cfg RunConfig) (*Game, error) {
	store := cfg.Store
	if store == nil {
		set := cfg.Settings
		if set == (Settings{}) {
			set = DefaultSettings()
		}
		if cfg.Width > 0 && cfg.Height > 0 {
			set.Width = float64(cfg.Width)
			set.Height = float64(cfg.Height)
		}
		store = NewSettingsStore(set.Clamp())
	}

	solver := cfg.Solver
	if solver == (SolverConfig{}) {
		solver = DefaultSolverConfig()
	}

	g := &Game{
		sim:           NewSim(cfg.Mesh, solver),
		store:         store,
		input:         NewInput(),
		controls:      NewControls(),
		renderer:      NewRenderer(),
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = defaultScreenshotDir
	}
	g.sim.SetDebugMode(cfg.Debug)

	if cfg.ShowHUD {
		hud, err := NewHUD(14)
		if err != nil {
			return nil, err
		}
		g.hud = hud
	}
	if len(cfg.TestScript) > 0 {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return nil, err
		}
		g.runner = runner
	}
	g.snap = g.sim.Snapshot()
	return g, nil
}

// Sim returns the simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Settings returns the settings store.
func (g *Game) Settings() *SettingsStore {
	return g.store
}

// Input returns the pointer input, for injecting synthetic strokes.
func (g *Game) Input() *Input {
	return g.input
}

// Runner returns the attached test runner, or nil.
func (g *Game) Runner() *TestRunner {
	return g.runner
}

// Update advances one tick.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if g.runner != nil {
		g.runner.step(g)
	}
	// A stroke finishing this tick is cut with the view that was drawn last
	// frame, so input runs before controls advance the view tween.
	g.input.Update(g.sim, g.store.Load())
	g.controls.Update(g.store, g.sim, dt)

	g.snap = g.sim.Step(g.store.Load())
	return nil
}

// Draw renders the latest snapshot, the HUD, and any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	set := g.store.Load()
	g.renderer.Draw(screen, g.snap, set)
	if g.hud != nil {
		g.hud.Draw(screen, set, g.sim.Stats())
	}
	g.flushScreenshots(screen)
}

// Layout tracks the window size: the outside size becomes the simulation
// bounds from the next tick on.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if cur := g.store.Load(); cur.Width != w || cur.Height != h {
		g.store.Update(func(s *Settings) {
			s.Width, s.Height = w, h
			*s = s.Clamp()
		})
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs the simulation until it is closed
// or a test script finishes.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&runGame{Game: g}); err != nil {
		return fmt.Errorf("cloth: run: %w", err)
	}
	return nil
}

// runGame stops the loop when the attached script is done.
type runGame struct {
	*Game
}

func (r *runGame) Update() error {
	if r.runner != nil && r.runner.Done() && len(r.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return r.Game.Update()
}
