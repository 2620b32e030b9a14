package system

import (
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"
)

// ZombieSystem ведёт зомби к костру и наносит костру урон.
type ZombieSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewZombieSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *ZombieSystem {
	return &ZombieSystem{store: store, eventDispatcher: eventDispatcher}
}

func (s *ZombieSystem) Update() {
	bonfire := s.store.Bonfire
	for _, z := range s.store.Zombies {
		delta := bonfire.Pos.Sub(z.Pos)
		dist := delta.Len()
		// Расстояние берётся до шага. Нулевое расстояние — зомби уже у костра.
		if dist > 0 {
			z.Pos = z.Pos.Add(delta.Scale(z.Speed / dist))
		}
		if dist >= config.BonfireAttackRadius {
			continue
		}
		// Урон суммируется: каждый зомби в радиусе отнимает своё.
		bonfire.HP -= config.BonfireDamagePerTick
		if bonfire.HP <= 0 {
			bonfire.HP = 0
			s.eventDispatcher.Dispatch(event.Event{Type: event.BonfireDestroyed})
			return
		}
	}
}
