package system

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/entity"
)

// VisualEffectSystem двигает косметические частицы и убирает погасшие.
type VisualEffectSystem struct {
	store *entity.Store
}

func NewVisualEffectSystem(store *entity.Store) *VisualEffectSystem {
	return &VisualEffectSystem{store: store}
}

func (s *VisualEffectSystem) Update() {
	s.store.RetainParticles(func(p *component.Particle) bool {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		return p.Life > 0
	})
}
