package rough

import (
	"math"
	"testing"
)

func TestOffsetRange_RoughnessZeroCollapses(t *testing.T) {
	o := NewOptions(WithSeed(7), WithRoughness(0))
	for i := 0; i < 100; i++ {
		if v := offsetRange(-5, 5, o, 1); v != 0 {
			t.Fatalf("draw %d: offset = %v, want exactly 0", i, v)
		}
	}
}

func TestOffsetRange_ConsumesStreamAtRoughnessZero(t *testing.T) {
	// The draw executes before the roughness multiply, so the stream
	// position must advance identically whether jitter is on or off.
	o := NewOptions(WithSeed(7), WithRoughness(0))
	offsetRange(-5, 5, o, 1)
	afterOne := o.random().Next()

	ref := NewRandom(7)
	ref.Next() // the draw consumed by offsetRange
	if want := ref.Next(); afterOne != want {
		t.Errorf("stream after zero-roughness offset = %v, want %v", afterOne, want)
	}
}

func TestOffsetRange_Scaling(t *testing.T) {
	tests := []struct {
		name      string
		roughness float64
		gain      float64
	}{
		{name: "unit gain", roughness: 1, gain: 1},
		{name: "double roughness", roughness: 2, gain: 1},
		{name: "attenuated", roughness: 1, gain: 0.4},
		{name: "both", roughness: 3, gain: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions(WithSeed(11), WithRoughness(tt.roughness))
			raw := NewRandom(11).Next()
			want := tt.roughness * tt.gain * (raw*(5-(-5)) + (-5))
			got := offsetRange(-5, 5, o, tt.gain)
			if math.Abs(got-want) > epsilon {
				t.Errorf("offsetRange = %v, want %v", got, want)
			}
		})
	}
}

func TestOffsetSymmetric_Bounds(t *testing.T) {
	o := NewOptions(WithSeed(3))
	for i := 0; i < 1000; i++ {
		v := offsetSymmetric(2, o, 1)
		if v < -2 || v >= 2 {
			t.Fatalf("draw %d out of [-2,2): %v", i, v)
		}
	}
}

func TestOptions_LazyRandomAttachment(t *testing.T) {
	o := NewOptions(WithSeed(5))
	if o.rng != nil {
		t.Fatal("random source attached before first use")
	}
	r1 := o.random()
	r2 := o.random()
	if r1 != r2 {
		t.Error("random source not reused across calls")
	}
}
