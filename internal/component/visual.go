// internal/component/visual.go
package component

// Particle — косметическая частица, на игру не влияет.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Life    int // сколько тиков осталось
	MaxLife int
}

// Alpha — доля оставшейся жизни, для прозрачности при отрисовке.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
