package app

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/types"
)

// Snapshot — копия состояния матча для отрисовки. Ничего не разделяет
// с живым хранилищем, поэтому её можно читать из другой горутины.
type Snapshot struct {
	Tick        uint64            `json:"tick"`
	Phase       component.Phase   `json:"phase"`
	Outcome     component.Outcome `json:"outcome"`
	Paused      bool              `json:"paused"`
	Score       int               `json:"score"`
	Wave        int               `json:"wave"`
	KillsInWave int               `json:"kills_in_wave"`
	KillsNeeded int               `json:"kills_needed"`
	WaveDelay   int               `json:"wave_delay"`
	AutoCombat  bool              `json:"auto_combat"`
	TargetID    types.EntityID    `json:"target_id,omitempty"`

	Player           component.Player  `json:"player"`
	Bonfire          component.Bonfire `json:"bonfire"`
	BonfireHPDisplay int               `json:"bonfire_hp_display"`

	Zombies   []component.Zombie       `json:"zombies"`
	Bullets   []component.Bullet       `json:"bullets"`
	Particles []component.Particle     `json:"particles"`
	Pickups   []component.WeaponPickup `json:"pickups"`
	Weapons   []component.Weapon       `json:"weapons"`
}

// Snapshot копирует текущее состояние матча.
func (g *Game) Snapshot() *Snapshot {
	s := g.Store
	m := s.Match
	return &Snapshot{
		Tick:             m.Tick,
		Phase:            m.Phase,
		Outcome:          m.Phase.Outcome(),
		Paused:           m.Paused,
		Score:            m.Score,
		Wave:             m.Wave,
		KillsInWave:      m.KillsInWave,
		KillsNeeded:      g.WaveSystem.KillsNeeded(),
		WaveDelay:        m.WaveDelay,
		AutoCombat:       m.AutoCombat,
		TargetID:         m.TargetID,
		Player:           *s.Player,
		Bonfire:          *s.Bonfire,
		BonfireHPDisplay: g.BonfireHPDisplay(),
		Zombies:          copyAll(s.Zombies),
		Bullets:          copyAll(s.Bullets),
		Particles:        copyAll(s.Particles),
		Pickups:          copyAll(s.Pickups),
		Weapons:          copyAll(s.Weapons),
	}
}

func copyAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
