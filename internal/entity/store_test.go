package entity

import (
	"testing"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/defs"
)

func TestAddZombieAssignsIncreasingIDs(t *testing.T) {
	s := NewStore()
	a := s.AddZombie(&component.Zombie{HP: 1})
	b := s.AddZombie(&component.Zombie{HP: 1})
	if a == 0 || b <= a {
		t.Fatalf("ids not increasing: a=%d b=%d", a, b)
	}
	if z, ok := s.FindZombie(b); !ok || z.ID != b {
		t.Fatalf("FindZombie(%d) = %v, %v", b, z, ok)
	}
	if _, ok := s.FindZombie(0); ok {
		t.Error("id 0 must never resolve")
	}
}

func TestRemoveZombieAtKeepsOrderAndInvalidatesID(t *testing.T) {
	s := NewStore()
	var ids []uint64
	for i := 0; i < 4; i++ {
		ids = append(ids, uint64(s.AddZombie(&component.Zombie{HP: i + 1})))
	}
	// обход с конца с удалением, как в разрешении попаданий
	for i := len(s.Zombies) - 1; i >= 0; i-- {
		if s.Zombies[i].HP%2 == 0 {
			s.RemoveZombieAt(i)
		}
	}
	if len(s.Zombies) != 2 {
		t.Fatalf("len = %d, want 2", len(s.Zombies))
	}
	if s.Zombies[0].HP != 1 || s.Zombies[1].HP != 3 {
		t.Errorf("order broken: %d, %d", s.Zombies[0].HP, s.Zombies[1].HP)
	}
	if _, ok := s.FindZombie(s.Zombies[0].ID); !ok {
		t.Error("surviving zombie must resolve")
	}
	removed := ids[1]
	for _, z := range s.Zombies {
		if uint64(z.ID) == removed {
			t.Fatal("removed zombie still present")
		}
	}
}

func TestRetainVisitsEveryElementOnce(t *testing.T) {
	s := NewStore()
	for i := 0; i < 6; i++ {
		s.AddParticle(&component.Particle{Life: i})
	}
	visited := 0
	s.RetainParticles(func(p *component.Particle) bool {
		visited++
		return p.Life%2 == 1
	})
	if visited != 6 {
		t.Fatalf("visited %d, want 6", visited)
	}
	want := []int{1, 3, 5}
	if len(s.Particles) != len(want) {
		t.Fatalf("len = %d, want %d", len(s.Particles), len(want))
	}
	for i, p := range s.Particles {
		if p.Life != want[i] {
			t.Errorf("particle %d life = %d, want %d", i, p.Life, want[i])
		}
	}
}

func TestResetClearsMatchButKeepsIDsGrowing(t *testing.T) {
	s := NewStore()
	id := s.AddZombie(&component.Zombie{})
	s.AddBullet(&component.Bullet{})
	s.AddPickup(&component.WeaponPickup{})
	s.Weapons = append(s.Weapons, &component.Weapon{Type: defs.WeaponFire, Level: 1})
	s.Match.Score = 100
	s.Bonfire.HP = 3

	s.Reset()

	if len(s.Zombies)+len(s.Bullets)+len(s.Pickups)+len(s.Weapons) != 0 {
		t.Fatal("collections not empty after reset")
	}
	if s.Match.Score != 0 || s.Bonfire.HP != 0 {
		t.Error("match state not reset")
	}
	if next := s.AddZombie(&component.Zombie{}); next <= id {
		t.Errorf("id reused after reset: %d <= %d", next, id)
	}
	if _, ok := s.FindWeapon(defs.WeaponFire); ok {
		t.Error("weapon survived reset")
	}
}
