package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bonfire-defense/internal/config"
)

func TestDefaultWeaponsMatchBaseStats(t *testing.T) {
	table := DefaultWeapons()
	cases := []struct {
		wt       WeaponType
		damage   int
		cooldown int
	}{
		{WeaponBasic, 1, 20},
		{WeaponFire, 2, 15},
		{WeaponIce, 2, 15},
		{WeaponLightning, 3, 12},
	}
	for _, c := range cases {
		def, ok := table.Get(c.wt)
		if !ok {
			t.Fatalf("%s: missing definition", c.wt)
		}
		if def.Damage != c.damage || def.Cooldown != c.cooldown {
			t.Errorf("%s: got damage=%d cooldown=%d, want %d/%d", c.wt, def.Damage, def.Cooldown, c.damage, c.cooldown)
		}
	}
	if table.MinCooldown != 12 {
		t.Errorf("MinCooldown = %d, want 12", table.MinCooldown)
	}
}

func TestCooldownScalesWithLevelAndFloors(t *testing.T) {
	table := DefaultWeapons()
	cases := []struct {
		wt    WeaponType
		level int
		want  int
	}{
		{WeaponBasic, 1, 20},
		{WeaponBasic, 2, 12}, // 10 floored
		{WeaponFire, 1, 15},
		{WeaponFire, 3, 12},
		{WeaponLightning, 1, 12},
		{WeaponLightning, 4, 12},
	}
	for _, c := range cases {
		if got := table.Cooldown(c.wt, c.level); got != c.want {
			t.Errorf("Cooldown(%s, %d) = %d, want %d", c.wt, c.level, got, c.want)
		}
	}
	if got := table.Damage(WeaponLightning, 2); got != 6 {
		t.Errorf("Damage(lightning, 2) = %d, want 6", got)
	}
}

func TestParseWeaponDefinitionsRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown id": `weapons: [{id: laser, damage: 1, cooldown: 1}]`,
		"duplicate": `
weapons:
  - {id: basic, damage: 1, cooldown: 20}
  - {id: basic, damage: 1, cooldown: 20}`,
		"missing types": `weapons: [{id: basic, damage: 1, cooldown: 20}]`,
		"zero damage":   `weapons: [{id: basic, damage: 0, cooldown: 20}]`,
		"not yaml":      `weapons: [`,
		"fast floor":    strings.Replace(string(defaultWeaponsYAML), "min_cooldown: 12", "min_cooldown: 3", 1),
	}
	for name, doc := range cases {
		if _, err := ParseWeaponDefinitions([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadWeaponDefinitionsFromFile(t *testing.T) {
	doc := strings.Replace(string(defaultWeaponsYAML), "damage: 3", "damage: 5", 1)
	path := filepath.Join(t.TempDir(), "weapons.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadWeaponDefinitions(path)
	if err != nil {
		t.Fatalf("LoadWeaponDefinitions: %v", err)
	}
	if got := table.Damage(WeaponLightning, 1); got != 5 {
		t.Errorf("lightning damage = %d, want 5", got)
	}

	if _, err := LoadWeaponDefinitions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMissingMinCooldownKeepsFloor(t *testing.T) {
	doc := strings.Replace(string(defaultWeaponsYAML), "min_cooldown: 12\n", "", 1)
	if strings.Contains(doc, "min_cooldown:") {
		t.Fatal("fixture still sets min_cooldown")
	}
	table, err := ParseWeaponDefinitions([]byte(doc))
	if err != nil {
		t.Fatalf("ParseWeaponDefinitions: %v", err)
	}
	if table.MinCooldown != config.MinWeaponCooldown {
		t.Errorf("MinCooldown = %d, want %d", table.MinCooldown, config.MinWeaponCooldown)
	}
	cases := []struct {
		wt    WeaponType
		level int
	}{
		{WeaponBasic, 2},
		{WeaponFire, 5},
		{WeaponLightning, 4},
	}
	for _, c := range cases {
		if got := table.Cooldown(c.wt, c.level); got != config.MinWeaponCooldown {
			t.Errorf("Cooldown(%s, %d) = %d, want %d", c.wt, c.level, got, config.MinWeaponCooldown)
		}
	}
}
