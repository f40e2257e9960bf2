package cloth

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws the current settings, mesh statistics and frame rates in the
// top-left corner. It replaces the label column of a slider panel.
type HUD struct {
	face  *text.GoTextFace
	lh    float64
	Color Color
	X, Y  float64
}

// NewHUD loads the Go Regular face at the given size.
func NewHUD(size float64) (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("cloth: failed to parse HUD font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &HUD{
		face:  face,
		lh:    m.HAscent + m.HDescent + m.HLineGap,
		Color: Color{R: 0.85, G: 0.88, B: 1, A: 0.9},
		X:     12,
		Y:     10,
	}, nil
}

// Draw renders the overlay. A HUD without a face (nil receiver included)
// falls back to the debug font.
func (h *HUD) Draw(dst *ebiten.Image, set Settings, stats Stats) {
	s := hudText(set, stats, ebiten.ActualFPS(), ebiten.ActualTPS())
	if h == nil || h.face == nil {
		ebitenutil.DebugPrintAt(dst, s, 12, 10)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(h.X, h.Y)
	op.ColorScale.ScaleWithColor(h.Color.toRGBA())
	op.LineSpacing = h.lh
	text.Draw(dst, s, h.face, op)
}

// hudText formats the overlay lines.
func hudText(set Settings, stats Stats, fps, tps float64) string {
	gravity := "off"
	if set.GravityEnabled {
		gravity = fmt.Sprintf("on ×%.2f", set.GravityMultiplier)
	}
	return fmt.Sprintf(
		"tension %.0f%%  view %.0f°  gravity %s  cut depth %.0f%%\n"+
			"layers %d  particles %d  broken %d / %d\n"+
			"FPS %.1f  TPS %.1f",
		set.Tension*100, set.ViewAngle, gravity, set.CutDepth*100,
		stats.Layers, stats.Particles, stats.Broken, stats.Constraints,
		fps, tps,
	)
}
