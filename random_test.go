package rough

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestRandom_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{name: "small seed", seed: 1},
		{name: "large seed", seed: 123456789},
		{name: "negative seed", seed: -42},
		{name: "seed above modulus", seed: parkMillerModulus + 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewRandom(tt.seed)
			b := NewRandom(tt.seed)
			for i := 0; i < 1000; i++ {
				va, vb := a.Next(), b.Next()
				if va != vb {
					t.Fatalf("draw %d: %v != %v", i, va, vb)
				}
			}
		})
	}
}

func TestRandom_Range(t *testing.T) {
	r := NewRandom(99)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestRandom_DifferentSeedsDiffer(t *testing.T) {
	a := NewRandom(1)
	b := NewRandom(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical streams")
	}
}

func TestRandom_ZeroSeedPolicy(t *testing.T) {
	// Seed 0 is documented as time-based: two zero-seed sources should not
	// replay each other (they could only collide if constructed in the
	// same nanosecond with identical clock reads).
	a := NewRandom(0)
	b := NewRandom(0)
	diverged := false
	for i := 0; i < 20; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Skip("zero-seed sources happened to share a clock read")
	}
}
