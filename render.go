package cloth

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer strokes a Snapshot onto an Ebitengine image. It projects with the
// same Projector the cut hit-test uses.
type Renderer struct {
	// Background fills the target before drawing. A zero alpha skips the fill.
	Background Color
	// PathColor is the stroke color of the in-progress cut path.
	PathColor Color
	// PathWidth is the stroke width of the in-progress cut path.
	PathWidth float32
	// Antialias smooths strokes at some fill-rate cost.
	Antialias bool
}

// NewRenderer returns a renderer with the default palette.
func NewRenderer() *Renderer {
	return &Renderer{
		Background: Color{R: 0.04, G: 0.05, B: 0.08, A: 1},
		PathColor:  Color{R: 1, G: 0, B: 0, A: 0.9},
		PathWidth:  2,
		Antialias:  true,
	}
}

// Draw renders snap viewed at set.ViewAngle. Layers are painted back to
// front, then the volume struts, then the cut path preview. Broken sticks are
// not drawn.
func (r *Renderer) Draw(dst *ebiten.Image, snap *Snapshot, set Settings) {
	if r.Background.A > 0 {
		dst.Fill(r.Background.toRGBA())
	}

	proj := NewProjector(set.ViewAngle, snap.PivotX)
	layers := len(snap.Layers)

	for d := layers - 1; d >= 0; d-- {
		r.drawSticks(dst, snap.Layers[d], proj, layers, set.Height)
	}
	r.drawSticks(dst, snap.Volume, proj, layers, set.Height)

	if snap.Dragging && len(snap.Path) > 1 {
		clr := r.PathColor.toRGBA()
		for i := 1; i < len(snap.Path); i++ {
			a, b := snap.Path[i-1], snap.Path[i]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.PathWidth, clr, r.Antialias)
		}
	}
}

func (r *Renderer) drawSticks(dst *ebiten.Image, sticks []Stick, proj Projector, layers int, height float64) {
	for i := range sticks {
		s := &sticks[i]
		if s.Broken {
			continue
		}
		a, _ := proj.Project(s.A)
		b, _ := proj.Project(s.B)

		l := stickShade(s.Depth, layers, (a.Y+b.Y)/2, height)
		vector.StrokeLine(dst,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			stickWidth(s.Depth, s.Volume), shadeColor(l), r.Antialias)
	}
}

// stickShade is a cheap lambert term: front layers and sticks near the top of
// the surface are brighter. Never darker than 0.25.
func stickShade(depth, layers int, midY, height float64) float64 {
	depthFactor := 1.0
	if layers > 1 {
		depthFactor = 1 - float64(depth)/float64(layers-1)
	}
	heightFactor := 1.0
	if height > 0 {
		heightFactor = 1 - midY/height
	}
	return max(0.25, 0.35*depthFactor+0.65*heightFactor)
}

// stickWidth thickens deeper layers slightly; volume struts are thinner.
func stickWidth(depth int, volume bool) float32 {
	w := float32(2.0)
	if volume {
		w = 1.2
	}
	return w + float32(depth)*0.25
}

// shadeColor maps a lambert term to the pale-blue cloth color.
func shadeColor(l float64) color.RGBA {
	return color.RGBA{
		R: channel(230 * l),
		G: channel(230 * l),
		B: channel(255 * l),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(clamp(v, 0, 255))
}
