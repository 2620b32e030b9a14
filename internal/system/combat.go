package system

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"
)

// CombatSystem управляет перезарядкой оружия игрока и выстрелами.
// Каждое оружие перезаряжается независимо и стреляет по ближайшему зомби в радиусе.
type CombatSystem struct {
	store           *entity.Store
	weapons         *defs.WeaponTable
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(store *entity.Store, weapons *defs.WeaponTable, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		store:           store,
		weapons:         weapons,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update() {
	player := s.store.Player
	for _, w := range s.store.Weapons {
		if w.Cooldown > 0 {
			w.Cooldown--
		}
		if w.Cooldown > 0 || len(s.store.Zombies) == 0 {
			continue
		}
		i, _ := nearestZombie(s.store.Zombies, player.Pos, player.AttackRange)
		if i < 0 {
			continue
		}
		s.fire(w, s.store.Zombies[i])
	}
}

func (s *CombatSystem) fire(w *component.Weapon, target *component.Zombie) {
	player := s.store.Player
	// Зомби прямо на игроке: скорость нулевая, попадание разрешится в этом же тике.
	dir, _ := target.Pos.Sub(player.Pos).Normalize()
	s.store.AddBullet(&component.Bullet{
		Pos:    player.Pos,
		Vel:    dir.Scale(config.BulletSpeed),
		Damage: s.weapons.Damage(w.Type, w.Level),
		Weapon: w.Type,
		Size:   config.BulletBaseSize + float64(w.Level-1)*config.BulletSizePerLvl,
	})
	w.Cooldown = s.weapons.Cooldown(w.Type, w.Level)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: w.Type})
}
