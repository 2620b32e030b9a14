package system

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"

	"go.uber.org/zap"
)

// PickupSystem отсчитывает жизнь предметов на земле и выдаёт оружие,
// когда игрок подходит к предмету.
type PickupSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewPickupSystem(store *entity.Store, eventDispatcher *event.Dispatcher, log *zap.Logger) *PickupSystem {
	return &PickupSystem{
		store:           store,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *PickupSystem) Update() {
	player := s.store.Player.Pos
	var collected []defs.WeaponType
	s.store.RetainPickups(func(p *component.WeaponPickup) bool {
		p.Life--
		if p.Life <= 0 {
			return false
		}
		if player.DistanceTo(p.Pos) < config.PickupGrabRadius {
			collected = append(collected, p.Type)
			return false
		}
		return true
	})
	for _, wt := range collected {
		s.collect(wt)
	}
}

func (s *PickupSystem) collect(wt defs.WeaponType) {
	level, evicted := CollectWeapon(s.store, wt)
	s.log.Info("weapon collected",
		zap.String("weapon", string(wt)),
		zap.Int("level", level),
		zap.String("evicted", string(evicted)),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WeaponCollected,
		Data: event.WeaponCollectedData{Type: wt, Level: level, Evicted: evicted},
	})
}

// CollectWeapon добавляет оружие в инвентарь: уже имеющееся повышает уровень,
// новое добавляется в конец с уровнем 1. Если оружия стало больше MaxWeapons,
// выбрасывается самое старое по времени получения.
// Возвращает уровень подобранного оружия и тип вытесненного (пусто, если никого).
func CollectWeapon(store *entity.Store, wt defs.WeaponType) (level int, evicted defs.WeaponType) {
	if w, ok := store.FindWeapon(wt); ok {
		w.Level++
		return w.Level, ""
	}
	store.Weapons = append(store.Weapons, &component.Weapon{Type: wt, Level: 1, Cooldown: 0})
	if len(store.Weapons) > config.MaxWeapons {
		evicted = store.Weapons[0].Type
		store.Weapons[0] = nil
		store.Weapons = store.Weapons[1:]
	}
	return 1, evicted
}
