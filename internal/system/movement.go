// internal/system/movement.go
package system

import (
	"math"

	"bonfire-defense/internal/config"
	"bonfire-defense/internal/entity"
)

// MovementSystem двигает игрока: ручное направление имеет приоритет,
// иначе в режиме автобоя игрок преследует ближайшего зомби.
type MovementSystem struct {
	store *entity.Store
}

func NewMovementSystem(store *entity.Store) *MovementSystem {
	return &MovementSystem{store: store}
}

func (s *MovementSystem) Update() {
	m := s.store.Match
	p := s.store.Player

	if dir := m.MoveDirection; dir != nil {
		p.Pos = p.Pos.Add(dir.Scale(p.Speed)).ClampToRadius(config.ArenaRadius)
		return
	}
	if !m.AutoCombat || len(s.store.Zombies) == 0 {
		return
	}

	target, ok := s.store.FindZombie(m.TargetID)
	if !ok {
		// Цель убита или ещё не выбрана: берём ближайшего зомби.
		i, _ := nearestZombie(s.store.Zombies, p.Pos, math.Inf(1))
		if i < 0 {
			m.TargetID = 0
			return
		}
		target = s.store.Zombies[i]
		m.TargetID = target.ID
	}

	delta := target.Pos.Sub(p.Pos)
	dist := delta.Len()
	// Внутри 80% дальности стоим на месте, оставляя запас для стрельбы.
	if dist > p.AttackRange*config.AutoCombatHold {
		p.Pos = p.Pos.Add(delta.Scale(p.Speed / dist))
	}
	p.Pos = p.Pos.ClampToRadius(config.ArenaRadius)
}
