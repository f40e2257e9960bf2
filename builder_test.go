package cloth

import (
	"math"
	"testing"
)

// smallMeshConfig is a 4×3 cell, three-layer lattice used across tests.
func smallMeshConfig() MeshConfig {
	return MeshConfig{
		Cols:     4,
		Rows:     3,
		Spacing:  10,
		Origin:   Vec2{X: 100, Y: 100},
		Layers:   3,
		LayerGap: 4,
	}
}

func TestBuildMeshCounts(t *testing.T) {
	m := BuildMesh(smallMeshConfig())

	if m.LayerCount() != 3 {
		t.Fatalf("LayerCount = %d, want 3", m.LayerCount())
	}
	// (3+1)×(4+1) particles per layer.
	if got := m.Layer(0).Field.Len(); got != 20 {
		t.Errorf("particles per layer = %d, want 20", got)
	}
	if m.ParticleCount() != 60 {
		t.Errorf("ParticleCount = %d, want 60", m.ParticleCount())
	}

	// 4 structural per cell, plus skip-one bending where in range.
	structural := 4 * 4 * 3
	bending := (4-1)*(3+1) + (3-1)*(4+1)
	for d := 0; d < 3; d++ {
		if got := m.Layer(d).Constraints.Len(); got != structural+bending {
			t.Errorf("layer %d constraints = %d, want %d", d, got, structural+bending)
		}
	}
	if got := m.Volume().Len(); got != 2*20 {
		t.Errorf("volume struts = %d, want 40", got)
	}
	if got := m.ConstraintCount(); got != 3*(structural+bending)+40 {
		t.Errorf("ConstraintCount = %d, want %d", got, 3*(structural+bending)+40)
	}
	if m.BrokenCount() != 0 {
		t.Errorf("BrokenCount = %d, want 0", m.BrokenCount())
	}
}

func TestBuildMeshDefaults(t *testing.T) {
	m := BuildMesh(MeshConfig{Origin: DefaultOrigin})
	cfg := m.Config()
	if cfg != DefaultMeshConfig() {
		t.Errorf("Config = %+v, want %+v", cfg, DefaultMeshConfig())
	}
	if m.LayerCount() != DefaultLayers {
		t.Errorf("LayerCount = %d, want %d", m.LayerCount(), DefaultLayers)
	}
	if got := m.Layer(0).Field.Len(); got != 81*61 {
		t.Errorf("particles per layer = %d, want %d", got, 81*61)
	}
}

func TestBuildMeshPinnedColumns(t *testing.T) {
	cfg := smallMeshConfig()
	m := BuildMesh(cfg)
	stride := cfg.Cols + 1

	for d := 0; d < m.LayerCount(); d++ {
		f := m.Layer(d).Field
		if f.Stride() != stride {
			t.Fatalf("Stride = %d, want %d", f.Stride(), stride)
		}
		for i := 0; i < f.Len(); i++ {
			x := i % stride
			want := x == 0 || x == cfg.Cols
			if got := f.At(i).Pinned; got != want {
				t.Errorf("layer %d particle %d pinned = %v, want %v", d, i, got, want)
			}
		}
	}
}

func TestBuildMeshPositions(t *testing.T) {
	cfg := smallMeshConfig()
	m := BuildMesh(cfg)

	for d := 0; d < m.LayerCount(); d++ {
		l := m.Layer(d)
		wantZ := float64(d) * cfg.LayerGap
		if l.Z != wantZ || l.Index != d {
			t.Errorf("layer %d: Index=%d Z=%v, want Z=%v", d, l.Index, l.Z, wantZ)
		}
		// Particle at column 2, row 1.
		p := l.Field.At(1*(cfg.Cols+1) + 2)
		if p.X != 120 || p.Y != 110 || p.Z != wantZ {
			t.Errorf("layer %d particle (2,1) = %+v", d, p.Pos())
		}
		if p.PrevX != p.X || p.PrevY != p.Y {
			t.Errorf("layer %d particle (2,1) has initial velocity", d)
		}
	}
	if m.PivotX() != 120 {
		t.Errorf("PivotX = %v, want 120", m.PivotX())
	}
}

func TestBuildMeshRestLengths(t *testing.T) {
	m := BuildMesh(smallMeshConfig())

	for d := 0; d < m.LayerCount(); d++ {
		for _, c := range m.Layer(d).Constraints.Constraints() {
			if c.Depth != d || c.P1.Layer != d || c.P2.Layer != d || c.Volume {
				t.Fatalf("layer %d constraint %+v escapes its layer", d, c)
			}
			ok := c.RestLength == 10 || c.RestLength == 20 ||
				math.Abs(c.RestLength-10*math.Sqrt2) < 1e-9
			if !ok {
				t.Errorf("unexpected rest length %v", c.RestLength)
			}
		}
	}

	for _, c := range m.Volume().Constraints() {
		if !c.Volume {
			t.Fatal("volume strut without Volume flag")
		}
		if c.P2.Layer != c.P1.Layer+1 || c.Depth != c.P1.Layer || c.P1.Index != c.P2.Index {
			t.Errorf("strut %+v does not link corresponding particles", c)
		}
		// Lengths are planar, so struts between stacked particles rest at 0.
		if c.RestLength != 0 {
			t.Errorf("strut rest length = %v, want 0", c.RestLength)
		}
	}
}

func TestBuildMeshSingleLayer(t *testing.T) {
	cfg := smallMeshConfig()
	cfg.Layers = 1
	m := BuildMesh(cfg)
	if m.Volume().Len() != 0 {
		t.Errorf("single layer has %d volume struts", m.Volume().Len())
	}
}

func TestBuildMeshIndependent(t *testing.T) {
	a := BuildMesh(smallMeshConfig())
	b := BuildMesh(smallMeshConfig())
	a.Layer(0).Constraints.At(0).Broken = true
	a.Layer(0).Field.At(6).X = 0
	if b.BrokenCount() != 0 || b.Layer(0).Field.At(6).X == 0 {
		t.Error("meshes share state")
	}
}

func TestMeshParticleOutOfRangePanics(t *testing.T) {
	m := BuildMesh(smallMeshConfig())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range reference")
		}
	}()
	m.Particle(ParticleRef{Layer: 0, Index: 20})
}

func TestMeshLayerOutOfRangePanics(t *testing.T) {
	m := BuildMesh(smallMeshConfig())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range layer")
		}
	}()
	m.Layer(3)
}
