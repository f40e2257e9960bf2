package cloth

import "math"

// CutResult summarizes one cut.
type CutResult struct {
	// Segments is the number of path segments tested.
	Segments int
	// Broken is the number of constraints this cut severed.
	Broken int
	// MaxLayer is the deepest layer whose constraints were eligible.
	MaxLayer int
}

// MaxCutLayer converts a depth fraction in [0, 1] to the deepest eligible
// layer index. 0 cuts only the front layer; 1 cuts every layer.
func MaxCutLayer(depthFraction float64, layers int) int {
	if layers <= 1 {
		return 0
	}
	d := int(math.Floor(depthFraction * float64(layers-1)))
	if d < 0 {
		return 0
	}
	if d > layers-1 {
		return layers - 1
	}
	return d
}

// SegmentsIntersect reports whether segment ab properly crosses segment cd.
// Each segment's endpoints must lie strictly on opposite sides of the other;
// collinear and touching configurations are not guaranteed to register.
func SegmentsIntersect(a, b, c, d Vec2) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// ccw reports whether p, q, r turn counter-clockwise (in a Y-down frame,
// clockwise on screen).
func ccw(p, q, r Vec2) bool {
	return (r.Y-p.Y)*(q.X-p.X) > (q.Y-p.Y)*(r.X-p.X)
}

// Cut breaks every non-broken constraint crossed by path whose owning layer
// is at most MaxCutLayer(depthFraction). Paths shorter than two points are a
// no-op. Particles are never removed; broken constraints stay inert until the
// mesh is rebuilt.
func (m *Mesh) Cut(path []Vec2, depthFraction float64, proj Projector) CutResult {
	if len(path) < 2 {
		return CutResult{}
	}

	res := CutResult{
		Segments: len(path) - 1,
		MaxLayer: MaxCutLayer(depthFraction, len(m.layers)),
	}
	m.projectLayers(res.MaxLayer+1, proj)

	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]

		for d := 0; d <= res.MaxLayer; d++ {
			res.Broken += cutSet(&m.layers[d].Constraints, m.projBuf, a, b, res.MaxLayer)
		}
		res.Broken += cutSet(&m.volume, m.projBuf, a, b, res.MaxLayer)
	}
	return res
}

// cutSet tests each eligible constraint of set against segment ab.
func cutSet(set *ConstraintMesh, proj [][]Vec2, a, b Vec2, maxLayer int) int {
	n := 0
	cs := set.constraints
	for i := range cs {
		c := &cs[i]
		if c.Broken || c.Depth > maxLayer {
			continue
		}
		p1 := proj[c.P1.Layer][c.P1.Index]
		p2 := proj[c.P2.Layer][c.P2.Index]
		if SegmentsIntersect(a, b, p1, p2) {
			c.Broken = true
			n++
		}
	}
	return n
}

// projectLayers fills projBuf for the first count layers. Particles do not
// move during a cut, so each particle is projected once rather than once per
// constraint and segment.
func (m *Mesh) projectLayers(count int, proj Projector) {
	// Volume struts at the deepest eligible layer reach one layer further.
	if count < len(m.layers) {
		count++
	}
	if cap(m.projBuf) < len(m.layers) {
		m.projBuf = make([][]Vec2, len(m.layers))
	}
	m.projBuf = m.projBuf[:len(m.layers)]

	for d := 0; d < count; d++ {
		pts := m.layers[d].Field.particles
		buf := m.projBuf[d]
		if cap(buf) < len(pts) {
			buf = make([]Vec2, len(pts))
		}
		buf = buf[:len(pts)]
		for i := range pts {
			p := &pts[i]
			buf[i], _ = proj.project(p.X, p.Y, p.Z)
		}
		m.projBuf[d] = buf
	}
}
