package utils

import (
	"math"
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestRangeAndAngleBounds(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(18, 20); v < 18 || v >= 20 {
			t.Fatalf("Range out of bounds: %f", v)
		}
		if a := r.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of bounds: %f", a)
		}
	}
}

func TestChooseCoversAllItems(t *testing.T) {
	r := NewPRNGService(1)
	items := []string{"fire", "ice", "lightning"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Choose(r, items)] = true
	}
	if len(seen) != len(items) {
		t.Errorf("seen %v, want all of %v", seen, items)
	}
	if got := Choose[string](r, nil); got != "" {
		t.Errorf("Choose(nil) = %q, want zero value", got)
	}
}

func TestFlickerBounded(t *testing.T) {
	for tick := uint64(0); tick < 500; tick++ {
		if f := Flicker(tick, 0.1); f < 0.9-1e-9 || f > 1.1+1e-9 {
			t.Fatalf("Flicker(%d) = %f out of [0.9, 1.1]", tick, f)
		}
	}
}
