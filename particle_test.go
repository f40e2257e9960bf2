package cloth

import "testing"

func TestParticleFieldAccessors(t *testing.T) {
	m := BuildMesh(smallMeshConfig())
	f := m.Layer(1).Field

	if f.Len() != 20 || len(f.Particles()) != 20 {
		t.Errorf("Len = %d, Particles = %d, want 20", f.Len(), len(f.Particles()))
	}
	if f.Stride() != 5 {
		t.Errorf("Stride = %d, want 5", f.Stride())
	}
	if f.At(7) != &f.Particles()[7] {
		t.Error("At does not address the backing slice")
	}
	if p := f.At(0).Pos(); p != (Vec3{X: 100, Y: 100, Z: 4}) {
		t.Errorf("Pos = %+v", p)
	}
}

func TestParticleFieldAtPanics(t *testing.T) {
	f := BuildMesh(smallMeshConfig()).Layer(0).Field
	for _, i := range []int{-1, f.Len()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) did not panic", i)
				}
			}()
			f.At(i)
		}()
	}
}

func TestParticleFieldIntegrateSkipsPinned(t *testing.T) {
	cfg := DefaultSolverConfig()
	set := DefaultSettings()
	f := BuildMesh(smallMeshConfig()).Layer(0).Field

	f.integrate(&cfg, &set)
	for i, p := range f.Particles() {
		moved := p.Y != p.PrevY
		if moved == p.Pinned {
			t.Errorf("particle %d pinned=%v moved=%v", i, p.Pinned, moved)
		}
	}
}

func TestParticleFieldIntegrateNarrowWindow(t *testing.T) {
	cfg := DefaultSolverConfig()
	set := DefaultSettings()
	set.Width, set.Height = 6, 6
	f := BuildMesh(smallMeshConfig()).Layer(0).Field

	f.integrate(&cfg, &set)
	for i, p := range f.Particles() {
		if p.Pinned {
			continue
		}
		if p.X != set.Width-cfg.Margin || p.Y != set.Height-cfg.Margin {
			t.Fatalf("particle %d at (%v, %v), want (1, 1)", i, p.X, p.Y)
		}
	}
}

func TestConstraintMeshBrokenCount(t *testing.T) {
	var cm ConstraintMesh
	cm.add(Constraint{RestLength: 1})
	cm.add(Constraint{RestLength: 2, Broken: true})
	cm.add(Constraint{RestLength: 3})
	if cm.Len() != 3 || cm.BrokenCount() != 1 {
		t.Errorf("Len = %d, BrokenCount = %d", cm.Len(), cm.BrokenCount())
	}
	cm.At(0).Broken = true
	if cm.BrokenCount() != 2 {
		t.Errorf("BrokenCount = %d, want 2", cm.BrokenCount())
	}
}
