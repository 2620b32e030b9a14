// internal/component/projectile.go
package component

import "bonfire-defense/internal/defs"

// Bullet представляет летящий снаряд. Цели у снаряда нет:
// он летит по прямой и попадает в первого зомби на пути.
type Bullet struct {
	Pos    Vec2
	Vel    Vec2
	Damage int
	Weapon defs.WeaponType
	Size   float64 // визуальный размер, растёт с уровнем оружия
}
