package game

import "testing"

func TestParticleBurstLivesAndExpires(t *testing.T) {
	ps := NewParticleSystem(128, 7)
	ps.SpawnBurst(5, 5, Palette.Food, 20, 10)
	if len(ps.P) != 20 {
		t.Fatalf("spawned %d particles, want 20", len(ps.P))
	}

	ps.Update(0.016)
	if len(ps.P) != 20 {
		t.Fatalf("%d particles after one frame, want 20", len(ps.P))
	}
	buf := ps.RenderData(nil)
	if len(buf) != 20*7 {
		t.Fatalf("render buffer %d floats, want %d", len(buf), 20*7)
	}

	// Everything expires within its MaxLife ceiling.
	for i := 0; i < 100; i++ {
		ps.Update(0.016)
	}
	if len(ps.P) != 0 {
		t.Fatalf("%d particles alive after 1.6s, want 0", len(ps.P))
	}
}

func TestParticlePoolOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(16, 7)
	ps.SpawnBurst(0, 0, Palette.Food, 50, 10)
	if len(ps.P) != 16 {
		t.Fatalf("pool grew to %d, cap is 16", len(ps.P))
	}
	ps.Clear()
	if len(ps.P) != 0 {
		t.Fatal("Clear left particles behind")
	}
}
