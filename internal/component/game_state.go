package component

import "bonfire-defense/internal/types"

// Phase — фаза матча.
type Phase int

const (
	// WaveDelayPhase — пауза перед стартом волны, спавн не идёт.
	WaveDelayPhase Phase = iota
	ActivePhase
	VictoryPhase
	DefeatPhase
)

func (p Phase) String() string {
	switch p {
	case WaveDelayPhase:
		return "wave_delay"
	case ActivePhase:
		return "active"
	case VictoryPhase:
		return "victory"
	case DefeatPhase:
		return "defeat"
	}
	return "unknown"
}

// IsTerminal — матч окончен, тик больше ничего не делает.
func (p Phase) IsTerminal() bool {
	return p == VictoryPhase || p == DefeatPhase
}

// Outcome — итог матча для внешних потребителей.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	}
	return "none"
}

// Outcome переводит фазу в итог матча.
func (p Phase) Outcome() Outcome {
	switch p {
	case VictoryPhase:
		return OutcomeVictory
	case DefeatPhase:
		return OutcomeDefeat
	}
	return OutcomeNone
}

// Match — состояние матча, не привязанное к конкретной сущности.
type Match struct {
	Tick           uint64
	Score          int
	Wave           int
	ZombiesPerWave int
	KillsInWave    int
	WaveDelay      int // тиков до возобновления спавна
	SpawnTimer     int
	PickupTimer    int
	Phase          Phase

	AutoCombat    bool
	TargetID      types.EntityID // слабая ссылка на зомби, 0 — цели нет
	MoveDirection *Vec2          // единичный вектор или nil
	Paused        bool
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
