package app

import (
	"fmt"

	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"

	"go.uber.org/zap"
)

// FromSettings собирает игру по настройкам запуска: сид и, если задан,
// внешний файл с таблицей оружия.
func FromSettings(s *config.Settings, log *zap.Logger) (*Game, error) {
	weapons := defs.DefaultWeapons()
	if path := s.Game.WeaponsFile; path != "" {
		loaded, err := defs.LoadWeaponDefinitions(path)
		if err != nil {
			return nil, fmt.Errorf("load weapons: %w", err)
		}
		weapons = loaded
		log.Info("weapon definitions loaded", zap.String("path", path), zap.Int("count", weapons.Len()))
	}
	return NewGame(Options{Seed: s.Game.Seed, Weapons: weapons, Logger: log}), nil
}
