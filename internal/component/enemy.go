package component

import "bonfire-defense/internal/types"

// Zombie представляет вражескую сущность, идущую к костру.
type Zombie struct {
	ID    types.EntityID // стабильный идентификатор на время матча
	Pos   Vec2
	HP    int
	Speed float64
}
