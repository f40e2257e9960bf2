package cloth

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// Settings are the user-tunable values read by the simulation every tick.
// The core trusts them as given; hosts call Clamp before storing.
type Settings struct {
	// Tension controls slack: 1 holds rest length, 0 allows the solver's
	// Loosen elongation, values above 1 pull tighter.
	Tension float64 `json:"tension"`
	// ViewAngle rotates the projection, in degrees.
	ViewAngle float64 `json:"viewAngle"`
	// GravityEnabled toggles the gravity impulse.
	GravityEnabled bool `json:"gravityEnabled"`
	// GravityMultiplier scales the gravity impulse.
	GravityMultiplier float64 `json:"gravityMultiplier"`
	// CutDepth is the fraction of layers, from the front, a cut may sever.
	CutDepth float64 `json:"cutDepth"`
	// Width and Height bound particle positions.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultSettings returns the initial settings for a 1280×720 surface.
func DefaultSettings() Settings {
	return Settings{
		Tension:           1,
		ViewAngle:         0,
		GravityEnabled:    true,
		GravityMultiplier: 1,
		CutDepth:          1,
		Width:             1280,
		Height:            720,
	}
}

// Clamp returns a copy with every value forced into its supported range.
func (s Settings) Clamp() Settings {
	s.Tension = clamp(s.Tension, 0, 2)
	s.GravityMultiplier = clamp(s.GravityMultiplier, 0, 2)
	s.CutDepth = clamp01(s.CutDepth)
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s
}

// LoadSettings parses a JSON preset on top of base. Fields absent from the
// document keep their base values. The result is clamped.
func LoadSettings(jsonData []byte, base Settings) (Settings, error) {
	s := base
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return base, fmt.Errorf("parse settings: %w", err)
	}
	return s.Clamp(), nil
}

// SettingsStore publishes Settings to the simulation. A Store becomes visible
// to the next Load, so writers (UI, scripts, tweens) never observe or cause a
// half-updated value. Safe for concurrent use.
type SettingsStore struct {
	cur atomic.Pointer[Settings]
}

// NewSettingsStore returns a store holding s.
func NewSettingsStore(s Settings) *SettingsStore {
	st := &SettingsStore{}
	st.Store(s)
	return st
}

// Load returns the current settings.
func (st *SettingsStore) Load() Settings {
	if p := st.cur.Load(); p != nil {
		return *p
	}
	return DefaultSettings()
}

// Store replaces the current settings.
func (st *SettingsStore) Store(s Settings) {
	st.cur.Store(&s)
}

// Update applies fn to a copy of the current settings and publishes the
// result. Concurrent updates are retried so none is lost.
func (st *SettingsStore) Update(fn func(*Settings)) Settings {
	for {
		old := st.cur.Load()
		var next Settings
		if old != nil {
			next = *old
		} else {
			next = DefaultSettings()
		}
		fn(&next)
		if st.cur.CompareAndSwap(old, &next) {
			return next
		}
	}
}
