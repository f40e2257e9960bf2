package cloth

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for Ebitengine.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector in screen space. Cut paths and projected positions use
// it.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a world-space position. Z is the depth axis.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dist2D is the planar distance between two world positions. Depth is static
// per layer, so constraint lengths are measured in the XY plane.
func dist2D(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}
