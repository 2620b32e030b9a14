// internal/entity/store.go
package entity

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/types"
)

// Store владеет всеми сущностями матча и его состоянием.
// Коллекции хранятся в порядке вставки; системы получают Store явно,
// глобального состояния нет.
type Store struct {
	NextID    types.EntityID
	Player    *component.Player
	Bonfire   *component.Bonfire
	Zombies   []*component.Zombie
	Bullets   []*component.Bullet
	Particles []*component.Particle
	Pickups   []*component.WeaponPickup
	Weapons   []*component.Weapon // в порядке получения, старшее оружие первым
	Match     *component.Match
}

func NewStore() *Store {
	return &Store{
		NextID:  1,
		Player:  &component.Player{},
		Bonfire: &component.Bonfire{},
		Match:   &component.Match{},
	}
}

// NewEntity выдаёт новый идентификатор.
func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddZombie добавляет зомби, присваивая ему идентификатор.
func (s *Store) AddZombie(z *component.Zombie) types.EntityID {
	z.ID = s.NewEntity()
	s.Zombies = append(s.Zombies, z)
	return z.ID
}

// FindZombie ищет живого зомби по идентификатору.
func (s *Store) FindZombie(id types.EntityID) (*component.Zombie, bool) {
	if id == 0 {
		return nil, false
	}
	for _, z := range s.Zombies {
		if z.ID == id {
			return z, true
		}
	}
	return nil, false
}

// RemoveZombieAt удаляет зомби по индексу, сохраняя порядок остальных.
// Безопасно вызывать при обходе коллекции с конца.
func (s *Store) RemoveZombieAt(i int) *component.Zombie {
	z := s.Zombies[i]
	copy(s.Zombies[i:], s.Zombies[i+1:])
	s.Zombies[len(s.Zombies)-1] = nil
	s.Zombies = s.Zombies[:len(s.Zombies)-1]
	return z
}

func (s *Store) AddBullet(b *component.Bullet) {
	s.Bullets = append(s.Bullets, b)
}

func (s *Store) AddParticle(p *component.Particle) {
	s.Particles = append(s.Particles, p)
}

func (s *Store) AddPickup(p *component.WeaponPickup) {
	s.Pickups = append(s.Pickups, p)
}

// RetainBullets оставляет только снаряды, для которых keep вернул true.
func (s *Store) RetainBullets(keep func(*component.Bullet) bool) {
	s.Bullets = retain(s.Bullets, keep)
}

// RetainParticles оставляет только частицы, для которых keep вернул true.
func (s *Store) RetainParticles(keep func(*component.Particle) bool) {
	s.Particles = retain(s.Particles, keep)
}

// RetainPickups оставляет только предметы, для которых keep вернул true.
func (s *Store) RetainPickups(keep func(*component.WeaponPickup) bool) {
	s.Pickups = retain(s.Pickups, keep)
}

// retain — фильтр без аллокаций: keep вызывается ровно один раз на элемент
// в порядке вставки, запись идёт не дальше текущей позиции чтения.
func retain[T any](items []*T, keep func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// FindWeapon возвращает оружие заданного типа из инвентаря.
func (s *Store) FindWeapon(wt defs.WeaponType) (*component.Weapon, bool) {
	for _, w := range s.Weapons {
		if w.Type == wt {
			return w, true
		}
	}
	return nil, false
}

// Reset очищает все коллекции для нового матча. Идентификаторы продолжают расти,
// чтобы ссылки из прошлого матча не совпали с новыми.
func (s *Store) Reset() {
	clear(s.Zombies)
	clear(s.Bullets)
	clear(s.Particles)
	clear(s.Pickups)
	s.Zombies = s.Zombies[:0]
	s.Bullets = s.Bullets[:0]
	s.Particles = s.Particles[:0]
	s.Pickups = s.Pickups[:0]
	s.Weapons = nil
	*s.Player = component.Player{}
	*s.Bonfire = component.Bonfire{}
	*s.Match = component.Match{}
}
