package system

import (
	"math"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"
	"bonfire-defense/internal/utils"
)

// SpawnerSystem создаёт зомби и предметы с оружием по таймерам.
type SpawnerSystem struct {
	store           *entity.Store
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnerSystem(store *entity.Store, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnerSystem {
	return &SpawnerSystem{
		store:           store,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnInterval — тиков между появлениями зомби на данной волне.
func SpawnInterval(wave int) int {
	return max(config.SpawnIntervalMin, config.SpawnIntervalBase-wave*config.SpawnIntervalPerWave)
}

// ZombieCap — сколько зомби одновременно может быть на арене.
func ZombieCap(zombiesPerWave, wave int) int {
	return zombiesPerWave + wave*config.ZombiesIncrement
}

func (s *SpawnerSystem) Update() {
	s.updateZombies()
	s.updatePickups()
}

func (s *SpawnerSystem) updateZombies() {
	m := s.store.Match
	m.SpawnTimer++
	if m.SpawnTimer < SpawnInterval(m.Wave) {
		return
	}
	// Лимит проверяется до вставки; таймер при этом не сбрасывается,
	// и зомби появится сразу, как только освободится место.
	if len(s.store.Zombies) >= ZombieCap(m.ZombiesPerWave, m.Wave) {
		return
	}
	s.spawnZombie()
	m.SpawnTimer = 0
}

func (s *SpawnerSystem) spawnZombie() {
	wave := s.store.Match.Wave
	angle := s.rng.Angle()
	dist := s.rng.Range(config.ZombieSpawnMinRadius, config.ZombieSpawnMaxRadius)
	z := &component.Zombie{
		Pos:   component.Polar(angle, dist),
		HP:    config.ZombieBaseHP + int(math.Floor(float64(wave)/2)),
		Speed: config.ZombieBaseSpeed + float64(wave)*config.ZombieSpeedPerWave,
	}
	s.store.AddZombie(z)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieSpawned, Data: z})
}

func (s *SpawnerSystem) updatePickups() {
	m := s.store.Match
	m.PickupTimer++
	if m.PickupTimer < config.PickupInterval {
		return
	}
	m.PickupTimer = 0
	if !s.rng.Chance(config.PickupChance) {
		return
	}
	angle := s.rng.Angle()
	dist := s.rng.Range(config.PickupMinRadius, config.PickupMaxRadius)
	p := &component.WeaponPickup{
		Pos:  component.Polar(angle, dist),
		Type: utils.Choose(s.rng, defs.PickupTypes),
		Life: config.PickupLife,
	}
	s.store.AddPickup(p)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PickupDropped, Data: p})
}
