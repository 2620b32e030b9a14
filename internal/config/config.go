// internal/config/config.go
package config

import "image/color"

// Параметры симуляции. Все таймеры — в тиках (номинально 60 тиков в секунду).
const (
	TicksPerSecond = 60

	PlayerStartX      = 0.0
	PlayerStartZ      = 5.0
	PlayerSpeed       = 0.15
	PlayerAttackRange = 8.0
	ArenaRadius       = 15.0 // игрок не может уйти дальше от центра
	AutoCombatHold    = 0.8  // доля дальности атаки, на которой автобой останавливается

	BonfireMaxHP         = 10.0
	BonfireAttackRadius  = 2.0
	BonfireDamagePerTick = 0.02 // за каждого зомби в радиусе

	ZombiesPerWave       = 5
	ZombiesIncrement     = 2 // прибавка к лимиту и цели убийств за волну
	ZombieSpawnMinRadius = 18.0
	ZombieSpawnMaxRadius = 20.0
	ZombieBaseHP         = 2
	ZombieBaseSpeed      = 0.03
	ZombieSpeedPerWave   = 0.005

	SpawnIntervalBase    = 120
	SpawnIntervalPerWave = 15
	SpawnIntervalMin     = 60

	InitialWaveDelay = 60
	WaveDelayTicks   = 90
	FinalWave        = 5
	VictoryBonus     = 500
	KillScorePerWave = 10

	BulletSpeed      = 0.3
	BulletBounds     = 20.0
	BulletHitRadius  = 1.5
	BulletBaseSize   = 0.2
	BulletSizePerLvl = 0.1
	MaxWeapons       = 3

	MinWeaponCooldown = 12 // тиков между выстрелами при любом уровне оружия

	PickupInterval   = 600
	PickupChance     = 0.3
	PickupLife       = 600
	PickupMinRadius  = 8.0
	PickupMaxRadius  = 13.0
	PickupGrabRadius = 2.0

	ParticlesPerKill = 5
	ParticleLife     = 30
	ParticleSpread   = 0.2 // компоненты скорости в диапазоне ±ParticleSpread/2
)

// Параметры отрисовки в окне ebiten.
const (
	ScreenWidth  = 960
	ScreenHeight = 960
	WorldScale   = 22.0 // пикселей на единицу арены

	HUDMargin         = 16
	WeaponSlotSize    = 56
	WeaponSlotGap     = 10
	JoystickRadius    = 60.0
	JoystickKnob      = 24.0
	JoystickDeadzone  = 0.15
	AutoButtonWidth   = 110
	AutoButtonHeight  = 36
	HealthBarWidth    = 220
	HealthBarHeight   = 16
	IndicatorFontSize = 24
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GroundColor       = color.RGBA{34, 46, 34, 255}
	ArenaEdgeColor    = color.RGBA{70, 100, 120, 220}
	PlayerColor       = color.RGBA{59, 130, 246, 255}
	RangeColor        = color.RGBA{59, 130, 246, 40}
	ZombieColor       = color.RGBA{74, 222, 128, 255}
	BonfireColor      = color.RGBA{251, 146, 60, 255}
	BonfireCoreColor  = color.RGBA{254, 240, 138, 255}
	ParticleColor     = color.RGBA{220, 38, 38, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	HealthFillColor   = color.RGBA{220, 60, 60, 220}
	HealthEmptyColor  = color.RGBA{40, 40, 50, 220}
	SlotColor         = color.RGBA{30, 30, 40, 200}
	CooldownColor     = color.RGBA{0, 0, 0, 140}
	AutoOnColor       = color.RGBA{220, 60, 60, 220}
	AutoOffColor      = color.RGBA{70, 130, 180, 220}
	VictoryColor      = color.RGBA{250, 204, 21, 255}
	DefeatColor       = color.RGBA{239, 68, 68, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
	JoystickBaseColor = color.RGBA{255, 255, 255, 50}
	JoystickKnobColor = color.RGBA{255, 255, 255, 140}
)
