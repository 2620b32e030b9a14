// internal/component/pickup.go
package component

import "bonfire-defense/internal/defs"

// WeaponPickup — предмет на земле, дающий или улучшающий оружие.
type WeaponPickup struct {
	Pos  Vec2
	Type defs.WeaponType
	Life int // тиков до исчезновения
}
