package cloth

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// Control steps.
const (
	tensionStep   = 0.1
	gravityStep   = 0.1
	cutDepthStep  = 0.2
	viewAngleStep = 15.0
	viewTweenTime = 0.35 // seconds
)

// Action is a discrete user command bound to a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionTensionUp
	ActionTensionDown
	ActionViewLeft
	ActionViewRight
	ActionViewFront
	ActionToggleGravity
	ActionGravityUp
	ActionGravityDown
	ActionCutDeeper
	ActionCutShallower
	ActionReset
)

// keyBinding maps a key (optionally with Shift held) to an Action.
type keyBinding struct {
	key    ebiten.Key
	shift  bool
	action Action
}

// defaultBindings replaces the slider panel of a windowed UI.
var defaultBindings = []keyBinding{
	{ebiten.KeyT, false, ActionTensionUp},
	{ebiten.KeyT, true, ActionTensionDown},
	{ebiten.KeyArrowLeft, false, ActionViewLeft},
	{ebiten.KeyArrowRight, false, ActionViewRight},
	{ebiten.KeyHome, false, ActionViewFront},
	{ebiten.KeyG, false, ActionToggleGravity},
	{ebiten.KeyEqual, false, ActionGravityUp},
	{ebiten.KeyMinus, false, ActionGravityDown},
	{ebiten.KeyD, false, ActionCutDeeper},
	{ebiten.KeyD, true, ActionCutShallower},
	{ebiten.KeyR, false, ActionReset},
}

// Controls applies keyboard actions to a SettingsStore and Sim. View angle
// changes are eased with a tween rather than applied instantly.
type Controls struct {
	bindings  []keyBinding
	viewTween *TweenGroup
	viewGoal  float64
}

// NewControls returns controls with the default key bindings.
func NewControls() *Controls {
	return &Controls{bindings: defaultBindings}
}

// Update polls just-pressed keys, applies their actions, and advances any
// running view tween by dt seconds.
func (c *Controls) Update(store *SettingsStore, sim *Sim, dt float32) {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, b := range c.bindings {
		if b.shift == shift && inpututil.IsKeyJustPressed(b.key) {
			c.Apply(b.action, store, sim)
		}
	}
	if c.viewTween != nil {
		c.viewTween.Update(store, dt)
		if c.viewTween.Done {
			c.viewTween = nil
		}
	}
}

// Apply performs one action.
func (c *Controls) Apply(a Action, store *SettingsStore, sim *Sim) {
	switch a {
	case ActionReset:
		sim.Reset()
		return
	case ActionViewLeft, ActionViewRight, ActionViewFront:
		c.startViewTween(a, store.Load())
		return
	}
	store.Update(func(s *Settings) {
		applyAction(a, s)
		*s = s.Clamp()
	})
}

// startViewTween eases the view angle toward the next goal. Repeated presses
// accumulate from the pending goal rather than the current frame's angle.
func (c *Controls) startViewTween(a Action, cur Settings) {
	if c.viewTween == nil {
		c.viewGoal = cur.ViewAngle
	}
	switch a {
	case ActionViewLeft:
		c.viewGoal -= viewAngleStep
	case ActionViewRight:
		c.viewGoal += viewAngleStep
	case ActionViewFront:
		c.viewGoal = 0
	}
	c.viewTween = TweenViewAngle(cur, c.viewGoal, viewTweenTime, ease.OutCubic)
}

// applyAction mutates s for actions that only touch settings.
func applyAction(a Action, s *Settings) {
	switch a {
	case ActionTensionUp:
		s.Tension += tensionStep
	case ActionTensionDown:
		s.Tension -= tensionStep
	case ActionToggleGravity:
		s.GravityEnabled = !s.GravityEnabled
	case ActionGravityUp:
		s.GravityMultiplier += gravityStep
	case ActionGravityDown:
		s.GravityMultiplier -= gravityStep
	case ActionCutDeeper:
		s.CutDepth += cutDepthStep
	case ActionCutShallower:
		s.CutDepth -= cutDepthStep
	}
}
