// internal/system/projectile.go
package system

import (
	"math"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"
	"bonfire-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	store           *entity.Store
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(store *entity.Store, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		store:           store,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	s.store.RetainBullets(func(b *component.Bullet) bool {
		// Матч закончился на одном из предыдущих снарядов: остальные не трогаем.
		if s.store.Match.Phase.IsTerminal() {
			return true
		}
		b.Pos = b.Pos.Add(b.Vel)
		if math.Abs(b.Pos.X) > config.BulletBounds || math.Abs(b.Pos.Z) > config.BulletBounds {
			return false
		}
		return !s.hit(b)
	})
}

// hit проверяет зомби с конца коллекции, чтобы удаление не сбивало обход.
// Снаряд поражает не больше одного зомби.
func (s *ProjectileSystem) hit(b *component.Bullet) bool {
	zombies := s.store.Zombies
	for i := len(zombies) - 1; i >= 0; i-- {
		z := zombies[i]
		if b.Pos.DistanceTo(z.Pos) >= config.BulletHitRadius {
			continue
		}
		z.HP -= b.Damage
		if z.HP <= 0 {
			s.kill(i)
		}
		return true
	}
	return false
}

func (s *ProjectileSystem) kill(i int) {
	z := s.store.RemoveZombieAt(i)
	for p := 0; p < config.ParticlesPerKill; p++ {
		s.store.AddParticle(&component.Particle{
			Pos: z.Pos,
			Vel: component.Vec2{
				X: (s.rng.Float64() - 0.5) * config.ParticleSpread,
				Z: (s.rng.Float64() - 0.5) * config.ParticleSpread,
			},
			Life:    config.ParticleLife,
			MaxLife: config.ParticleLife,
		})
	}
	m := s.store.Match
	reward := config.KillScorePerWave * m.Wave
	m.Score += reward
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ZombieKilled,
		Data: event.ZombieKilledData{ID: z.ID, Pos: z.Pos, Wave: m.Wave, Reward: reward},
	})
}
