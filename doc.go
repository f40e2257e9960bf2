// Package cloth is a layered, tearable cloth simulation for [Ebitengine].
//
// A [Mesh] is a stack of identical particle grids ("layers") at increasing
// depth, each held together by structural and bending constraints, with
// volume struts joining corresponding particles of adjacent layers. A
// [Solver] advances it with Verlet integration followed by a fixed number of
// relaxation passes. A pointer stroke drawn across the screen becomes a cut
// path; when the stroke ends, every constraint whose projected segment the
// path crosses is severed, down to a configurable depth.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cloth.Run(cloth.RunConfig{
//		Title: "Cloth", Width: 1280, Height: 720, ShowHUD: true,
//	})
//
// For full control, drive a [Sim] yourself. Settings come from a
// [SettingsStore] that any goroutine may publish to:
//
//	sim := cloth.NewSim(cloth.DefaultMeshConfig(), cloth.DefaultSolverConfig())
//	store := cloth.NewSettingsStore(cloth.DefaultSettings())
//
//	func (g *Game) Update() error {
//		g.snap = g.sim.Step(g.store.Load())
//		return nil
//	}
//
// [Sim.Advance] runs fixed ticks from a variable frame time instead.
//
// # Cutting
//
// Paths are built with [Sim.BeginPath], [Sim.ExtendPath] and
// [Sim.FinalizePath]. [Settings.CutDepth] selects how many layers, from the
// front, a cut may reach; 0 cuts only the front layer and 1 cuts through.
// The hit-test runs against the positions drawn on screen, so what is drawn
// is exactly what is cut at any [Settings.ViewAngle]. Broken constraints are
// never repaired; [Sim.Reset] rebuilds the mesh.
//
// # Host integration
//
// [Game] implements [ebiten.Game] with keyboard [Controls], pointer [Input],
// a [Renderer], an optional [HUD], view-angle tweens (via [gween]) and
// scripted runs through [TestRunner]. Simulation events can be bridged into
// a [Donburi] world with the adapter in cloth/ecs. Logging goes through
// [SetLogger] and is silent by default.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package cloth
