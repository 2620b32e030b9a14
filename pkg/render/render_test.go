package render

import (
	"image/color"
	"math"
	"testing"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/defs"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fbbf24", color.RGBA{0xfb, 0xbf, 0x24, 255}, true},
		{"ef4444", color.RGBA{0xef, 0x44, 0x44, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#12345", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("ParseHexColor(%q) err = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := WithAlpha(c, 0); got != (color.RGBA{}) {
		t.Errorf("zero alpha = %v", got)
	}
	if got := WithAlpha(c, 2); got != c {
		t.Errorf("alpha above 1 must clamp, got %v", got)
	}
	if got := WithAlpha(c, 0.5); got != (color.RGBA{100, 50, 25, 127}) {
		t.Errorf("half alpha = %v", got)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	r := NewArenaRenderer(defs.DefaultWeapons(), 960, 960, 22)
	x, y := r.WorldToScreen(component.Vec2{})
	if x != 480 || y != 480 {
		t.Errorf("origin at %v,%v", x, y)
	}
	p := component.Vec2{X: -3.5, Z: 12.25}
	back := r.ScreenToWorld(r.WorldToScreen(p))
	if math.Abs(back.X-p.X) > 1e-4 || math.Abs(back.Z-p.Z) > 1e-4 {
		t.Errorf("round trip %v -> %v", p, back)
	}
}

func TestWeaponColorsFromDefinitions(t *testing.T) {
	r := NewArenaRenderer(defs.DefaultWeapons(), 960, 960, 22)
	if got := r.WeaponColor(defs.WeaponFire); got != (color.RGBA{0xef, 0x44, 0x44, 255}) {
		t.Errorf("fire color = %v", got)
	}
	if got := r.WeaponColor(defs.WeaponLightning); got != (color.RGBA{0xa8, 0x55, 0xf7, 255}) {
		t.Errorf("lightning color = %v", got)
	}
}
