// internal/component/player.go
package component

// Player — юнит игрока. В матче ровно один.
type Player struct {
	Pos         Vec2
	Speed       float64 // единиц за тик
	AttackRange float64
}
