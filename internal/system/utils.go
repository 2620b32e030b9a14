// internal/system/utils.go
package system

import (
	"math"

	"bonfire-defense/internal/component"
)

// nearestZombie возвращает индекс ближайшего к from зомби и расстояние до него.
// Учитываются только зомби строго ближе maxDist; при равенстве побеждает
// вставленный раньше. Если подходящих нет, индекс равен -1.
func nearestZombie(zombies []*component.Zombie, from component.Vec2, maxDist float64) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, z := range zombies {
		d := from.DistanceTo(z.Pos)
		if d < bestDist && d < maxDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}

// KillsToClear — сколько убийств нужно, чтобы пройти волну.
func KillsToClear(zombiesPerWave, wave, increment int) int {
	return zombiesPerWave + (wave-1)*increment
}
