// internal/system/wave.go
package system

import (
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"

	"go.uber.org/zap"
)

// WaveSystem ведёт счёт убийств, переключает волны и определяет конец матча.
type WaveSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewWaveSystem(store *entity.Store, eventDispatcher *event.Dispatcher, log *zap.Logger) *WaveSystem {
	ws := &WaveSystem{
		store:           store,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.Subscribe(event.ZombieKilled, ws)
	eventDispatcher.Subscribe(event.BonfireDestroyed, ws)
	return ws
}

// Update отсчитывает задержку между волнами. Возвращает false, если в этом тике
// симуляция дальше не идёт (задержка ещё не истекла или матч окончен).
func (s *WaveSystem) Update() bool {
	m := s.store.Match
	switch m.Phase {
	case component.VictoryPhase, component.DefeatPhase:
		return false
	case component.WaveDelayPhase:
		m.WaveDelay--
		if m.WaveDelay > 0 {
			return false
		}
		m.WaveDelay = 0
		m.Phase = component.ActivePhase
		s.log.Debug("wave started", zap.Int("wave", m.Wave))
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: m.Wave}})
	}
	return true
}

// KillsNeeded — сколько убийств осталось набрать в текущей волне.
func (s *WaveSystem) KillsNeeded() int {
	m := s.store.Match
	return KillsToClear(m.ZombiesPerWave, m.Wave, config.ZombiesIncrement)
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ZombieKilled:
		s.onKill()
	case event.BonfireDestroyed:
		s.finish(component.DefeatPhase)
	}
}

func (s *WaveSystem) onKill() {
	m := s.store.Match
	if m.Phase.IsTerminal() {
		return
	}
	m.KillsInWave++
	if m.KillsInWave < s.KillsNeeded() {
		return
	}

	cleared := m.Wave
	m.KillsInWave = 0
	m.Wave++
	m.WaveDelay = config.WaveDelayTicks
	m.Phase = component.WaveDelayPhase
	s.log.Info("wave cleared", zap.Int("wave", cleared), zap.Int("score", m.Score))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: cleared}})

	if m.Wave > config.FinalWave {
		m.Score += config.VictoryBonus
		s.finish(component.VictoryPhase)
	}
}

func (s *WaveSystem) finish(phase component.Phase) {
	m := s.store.Match
	if m.Phase.IsTerminal() {
		return
	}
	m.Phase = phase
	m.WaveDelay = 0
	m.TargetID = 0
	s.log.Info("match ended",
		zap.Stringer("outcome", phase.Outcome()),
		zap.Int("score", m.Score),
		zap.Int("wave", m.Wave),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MatchEnded,
		Data: event.MatchEndedData{Outcome: phase.Outcome(), Score: m.Score, Wave: m.Wave},
	})
}
