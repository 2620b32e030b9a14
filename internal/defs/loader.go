// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"bonfire-defense/internal/config"

	"gopkg.in/yaml.v3"
)

//go:embed weapons.yaml
var defaultWeaponsYAML []byte

var defaultWeapons = mustParseWeapons(defaultWeaponsYAML)

type weaponsFile struct {
	MinCooldown int                `yaml:"min_cooldown"`
	Weapons     []WeaponDefinition `yaml:"weapons"`
}

// DefaultWeapons returns the weapon table shipped with the binary.
func DefaultWeapons() *WeaponTable {
	return defaultWeapons
}

// LoadWeaponDefinitions reads a weapons YAML file from disk.
func LoadWeaponDefinitions(path string) (*WeaponTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon definitions file: %w", err)
	}
	return ParseWeaponDefinitions(data)
}

// ParseWeaponDefinitions decodes and validates a weapons YAML document.
// Every weapon type must be present exactly once. A missing min_cooldown
// falls back to config.MinWeaponCooldown; a lower one is rejected.
func ParseWeaponDefinitions(data []byte) (*WeaponTable, error) {
	var file weaponsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	table := &WeaponTable{
		MinCooldown: file.MinCooldown,
		defs:        make(map[WeaponType]WeaponDefinition, len(file.Weapons)),
	}
	switch {
	case table.MinCooldown == 0:
		table.MinCooldown = config.MinWeaponCooldown
	case table.MinCooldown < config.MinWeaponCooldown:
		return nil, fmt.Errorf("min_cooldown %d is below the %d tick floor", table.MinCooldown, config.MinWeaponCooldown)
	}
	for _, def := range file.Weapons {
		if !def.ID.Valid() {
			return nil, fmt.Errorf("unknown weapon id %q", def.ID)
		}
		if _, dup := table.defs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate weapon id %q", def.ID)
		}
		if def.Damage <= 0 || def.Cooldown <= 0 {
			return nil, fmt.Errorf("weapon %q: damage and cooldown must be positive", def.ID)
		}
		table.defs[def.ID] = def
	}
	for _, wt := range []WeaponType{WeaponBasic, WeaponFire, WeaponIce, WeaponLightning} {
		if _, ok := table.defs[wt]; !ok {
			return nil, fmt.Errorf("missing definition for weapon %q", wt)
		}
	}
	return table, nil
}

func mustParseWeapons(data []byte) *WeaponTable {
	table, err := ParseWeaponDefinitions(data)
	if err != nil {
		panic(fmt.Sprintf("embedded weapons.yaml: %v", err))
	}
	return table
}
