package cloth

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SettingField selects a numeric Settings field for tweening.
type SettingField uint8

const (
	FieldTension           SettingField = iota // Settings.Tension
	FieldViewAngle                             // Settings.ViewAngle
	FieldGravityMultiplier                     // Settings.GravityMultiplier
	FieldCutDepth                              // Settings.CutDepth
)

// ptr returns the address of the selected field in s.
func (f SettingField) ptr(s *Settings) *float64 {
	switch f {
	case FieldTension:
		return &s.Tension
	case FieldViewAngle:
		return &s.ViewAngle
	case FieldGravityMultiplier:
		return &s.GravityMultiplier
	default:
		return &s.CutDepth
	}
}

// TweenGroup animates up to 4 Settings fields simultaneously. Create one via
// the convenience constructors and call Update(store, dt) each tick; every
// Update publishes the interpolated values to the store, so the simulation
// sees them on its next tick.
//
// There is no global animation manager; hosts call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]SettingField
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to store.
func (g *TweenGroup) Update(store *SettingsStore, dt float32) {
	if g.Done {
		return
	}

	var vals [4]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	store.Update(func(s *Settings) {
		for i := 0; i < g.count; i++ {
			*g.fields[i].ptr(s) = float64(vals[i])
		}
	})
}

// TweenField creates a TweenGroup animating one field from its value in from
// to the given target.
func TweenField(from Settings, field SettingField, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field.ptr(&from)), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenViewAngle animates the view angle toward to degrees.
func TweenViewAngle(from Settings, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenField(from, FieldViewAngle, to, duration, fn)
}

// TweenSettings animates tension, view angle, gravity multiplier and cut
// depth from one settings value to another. Booleans and bounds are not
// animated.
func TweenSettings(from, to Settings, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	for i, f := range [4]SettingField{FieldTension, FieldViewAngle, FieldGravityMultiplier, FieldCutDepth} {
		g.tweens[i] = gween.New(float32(*f.ptr(&from)), float32(*f.ptr(&to)), duration, fn)
		g.fields[i] = f
	}
	return g
}
