package event

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/types"
)

const (
	MatchStarted     EventType = "MatchStarted"     // Новый матч
	MatchEnded       EventType = "MatchEnded"       // Победа или поражение, Data: MatchEndedData
	WaveStarted      EventType = "WaveStarted"      // Задержка закончилась, Data: WaveData
	WaveCleared      EventType = "WaveCleared"      // Набрано нужное число убийств, Data: WaveData
	ZombieSpawned    EventType = "ZombieSpawned"    // Data: *component.Zombie
	ZombieKilled     EventType = "ZombieKilled"     // Data: ZombieKilledData
	BulletFired      EventType = "BulletFired"      // Data: defs.WeaponType
	PickupDropped    EventType = "PickupDropped"    // Data: *component.WeaponPickup
	WeaponCollected  EventType = "WeaponCollected"  // Data: WeaponCollectedData
	BonfireDestroyed EventType = "BonfireDestroyed" // hp костра дошло до нуля
)

// ZombieKilledData — нагрузка события ZombieKilled.
type ZombieKilledData struct {
	ID     types.EntityID
	Pos    component.Vec2
	Wave   int // волна, в которой произошло убийство
	Reward int
}

// WaveData — нагрузка событий волн.
type WaveData struct {
	Wave int // для WaveCleared — номер пройденной волны
}

// WeaponCollectedData — нагрузка события WeaponCollected.
type WeaponCollectedData struct {
	Type    defs.WeaponType
	Level   int             // уровень после подбора
	Evicted defs.WeaponType // вытесненное оружие, пусто если никого не вытеснили
}

// MatchEndedData — нагрузка события MatchEnded.
type MatchEndedData struct {
	Outcome component.Outcome
	Score   int
	Wave    int
}
