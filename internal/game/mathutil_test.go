package game

import "testing"

func TestRandDeterministicAndBounded(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 1000; i++ {
		va, vb := a.Intn(GridW), b.Intn(GridW)
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
		if va < 0 || va >= GridW {
			t.Fatalf("Intn(%d) returned %d", GridW, va)
		}
		f := a.Float64()
		b.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 returned %v", f)
		}
	}
}

func TestRandZeroSeedIsValid(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 && r.NextU64() == 0 {
		t.Fatal("zero seed produced a stuck generator")
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Fatal("Intn with n<=0 must return 0")
	}
}

func TestLerpRGBEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 100, B: 0}
	if lerpRGB(a, b, 0) != a {
		t.Fatal("t=0 must return the first color")
	}
	if lerpRGB(a, b, 1) != b {
		t.Fatal("t=1 must return the second color")
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R <= a.R || mid.R >= b.R {
		t.Fatalf("midpoint red %d not between %d and %d", mid.R, a.R, b.R)
	}
}
