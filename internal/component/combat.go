package component

import "bonfire-defense/internal/defs"

// Bonfire — защищаемый костёр в центре арены.
type Bonfire struct {
	Pos   Vec2
	HP    float64
	MaxHP float64
}

// Weapon — оружие в инвентаре игрока со своей перезарядкой.
type Weapon struct {
	Type     defs.WeaponType
	Level    int // >= 1
	Cooldown int // тиков до следующего выстрела
}
