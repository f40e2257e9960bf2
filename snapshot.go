package cloth

// Stick is a rendering view of one constraint.
type Stick struct {
	A, B   Vec3
	Depth  int
	Volume bool
	Broken bool
}

// Snapshot is the pull-based output handed to rendering. Its slices are
// reused: a Snapshot is valid until the next call that produces one from the
// same Sim.
type Snapshot struct {
	Frame uint64
	// PivotX is the projection pivot of the current mesh.
	PivotX float64
	// Layers holds each layer's structural and bending constraints in
	// relaxation order, front layer first.
	Layers [][]Stick
	// Volume holds the volume struts.
	Volume []Stick
	// Path is the in-progress cut path. Empty unless Dragging.
	Path     []Vec2
	Dragging bool
}

// Broken returns the number of broken sticks in the snapshot.
func (s *Snapshot) Broken() int {
	n := 0
	for _, layer := range s.Layers {
		for i := range layer {
			if layer[i].Broken {
				n++
			}
		}
	}
	for i := range s.Volume {
		if s.Volume[i].Broken {
			n++
		}
	}
	return n
}

// fill rebuilds the snapshot from m, growing buffers to a high-water mark.
func (s *Snapshot) fill(m *Mesh, frame uint64, path []Vec2, dragging bool) {
	s.Frame = frame
	s.PivotX = m.pivotX

	if cap(s.Layers) < len(m.layers) {
		s.Layers = make([][]Stick, len(m.layers))
	}
	s.Layers = s.Layers[:len(m.layers)]
	for d := range m.layers {
		s.Layers[d] = appendSticks(s.Layers[d][:0], m, &m.layers[d].Constraints)
	}
	s.Volume = appendSticks(s.Volume[:0], m, &m.volume)

	s.Dragging = dragging
	s.Path = s.Path[:0]
	if dragging {
		s.Path = append(s.Path, path...)
	}
}

func appendSticks(dst []Stick, m *Mesh, set *ConstraintMesh) []Stick {
	cs := set.constraints
	for i := range cs {
		c := &cs[i]
		a := &m.layers[c.P1.Layer].Field.particles[c.P1.Index]
		b := &m.layers[c.P2.Layer].Field.particles[c.P2.Index]
		dst = append(dst, Stick{
			A:      Vec3{X: a.X, Y: a.Y, Z: a.Z},
			B:      Vec3{X: b.X, Y: b.Y, Z: b.Z},
			Depth:  c.Depth,
			Volume: c.Volume,
			Broken: c.Broken,
		})
	}
	return dst
}
