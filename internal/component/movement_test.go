package component

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		ok   bool
	}{
		{"unit", Vec2{X: 1}, true},
		{"long", Vec2{X: 3, Z: 4}, true},
		{"zero", Vec2{}, false},
		{"nan", Vec2{X: math.NaN(), Z: 1}, false},
		{"inf", Vec2{X: math.Inf(1)}, false},
	}
	for _, c := range cases {
		got, ok := c.in.Normalize()
		if ok != c.ok {
			t.Fatalf("%s: ok = %v, want %v", c.name, ok, c.ok)
		}
		if ok && math.Abs(got.Len()-1) > 1e-12 {
			t.Errorf("%s: len = %f, want 1", c.name, got.Len())
		}
	}
}

func TestClampToRadius(t *testing.T) {
	in := Vec2{X: 30, Z: 40}
	got := in.ClampToRadius(15)
	if math.Abs(got.Len()-15) > 1e-9 {
		t.Fatalf("len = %f, want 15", got.Len())
	}
	if math.Abs(got.X/got.Z-0.75) > 1e-9 {
		t.Errorf("direction changed: %+v", got)
	}
	inside := Vec2{X: 1, Z: 2}
	if inside.ClampToRadius(15) != inside {
		t.Error("point inside radius must not move")
	}
}
