// internal/defs/weapons.go
package defs

// WeaponDefinition holds the static data for one weapon type.
type WeaponDefinition struct {
	ID       WeaponType `yaml:"id"`
	Name     string     `yaml:"name"`
	Damage   int        `yaml:"damage"`
	Cooldown int        `yaml:"cooldown"` // ticks between shots at level 1
	Color    string     `yaml:"color"`    // "#rrggbb", used by the renderers
}

// WeaponTable is the library of weapon definitions, keyed by type.
type WeaponTable struct {
	MinCooldown int
	defs        map[WeaponType]WeaponDefinition
}

// Get returns the definition for t.
func (t *WeaponTable) Get(wt WeaponType) (WeaponDefinition, bool) {
	def, ok := t.defs[wt]
	return def, ok
}

// Damage returns the damage of a bullet fired by a weapon of type wt at the given level.
func (t *WeaponTable) Damage(wt WeaponType, level int) int {
	return t.defs[wt].Damage * level
}

// Cooldown returns the cooldown applied after a shot: higher levels fire faster,
// but never faster than MinCooldown.
func (t *WeaponTable) Cooldown(wt WeaponType, level int) int {
	if level < 1 {
		level = 1
	}
	cd := t.defs[wt].Cooldown / level
	if cd < t.MinCooldown {
		cd = t.MinCooldown
	}
	return cd
}

// Len returns the number of loaded definitions.
func (t *WeaponTable) Len() int {
	return len(t.defs)
}
