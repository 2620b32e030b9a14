// internal/defs/types.go
package defs

// WeaponType identifies a weapon family. Values match the ids in weapons.yaml.
type WeaponType string

const (
	WeaponBasic     WeaponType = "basic"
	WeaponFire      WeaponType = "fire"
	WeaponIce       WeaponType = "ice"
	WeaponLightning WeaponType = "lightning"
)

// AllWeaponTypes lists every weapon type in inventory display order.
var AllWeaponTypes = []WeaponType{WeaponBasic, WeaponFire, WeaponIce, WeaponLightning}

// PickupTypes lists the weapon types that can drop as pickups.
// The basic weapon is only granted at match start.
var PickupTypes = []WeaponType{WeaponFire, WeaponIce, WeaponLightning}

// Valid reports whether t is one of the known weapon types.
func (t WeaponType) Valid() bool {
	switch t {
	case WeaponBasic, WeaponFire, WeaponIce, WeaponLightning:
		return true
	}
	return false
}
