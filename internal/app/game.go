// internal/app/game.go
package app

import (
	"math"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/entity"
	"bonfire-defense/internal/event"
	"bonfire-defense/internal/system"
	"bonfire-defense/internal/utils"

	"go.uber.org/zap"
)

// Options — параметры создания игры. Нулевые значения заменяются умолчаниями.
type Options struct {
	Seed    int64 // 0 — от текущего времени
	Weapons *defs.WeaponTable
	Logger  *zap.Logger
}

// Game — контекст симуляции: хранилище сущностей, системы и внешний API.
// Все изменения происходят в Tick; снаружи только задаётся направление
// движения, автобой и пауза. Game не потокобезопасна.
type Game struct {
	Store           *entity.Store
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	WeaponDefs      *defs.WeaponTable

	SpawnerSystem      *system.SpawnerSystem
	PickupSystem       *system.PickupSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	ZombieSystem       *system.ZombieSystem
	VisualEffectSystem *system.VisualEffectSystem
	WaveSystem         *system.WaveSystem

	log     *zap.Logger
	started bool
}

// NewGame initializes a new game instance. The match itself starts with StartMatch.
func NewGame(opts Options) *Game {
	if opts.Weapons == nil {
		opts.Weapons = defs.DefaultWeapons()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	store := entity.NewStore()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	log := opts.Logger

	g := &Game{
		Store:              store,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		WeaponDefs:         opts.Weapons,
		SpawnerSystem:      system.NewSpawnerSystem(store, rng, eventDispatcher),
		PickupSystem:       system.NewPickupSystem(store, eventDispatcher, log),
		MovementSystem:     system.NewMovementSystem(store),
		CombatSystem:       system.NewCombatSystem(store, opts.Weapons, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(store, rng, eventDispatcher),
		ZombieSystem:       system.NewZombieSystem(store, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(store),
		WaveSystem:         system.NewWaveSystem(store, eventDispatcher, log),
		log:                log,
	}
	log.Debug("game created", zap.Int64("seed", rng.Seed()))
	return g
}

// StartMatch сбрасывает всё состояние и начинает новый матч.
func (g *Game) StartMatch() {
	s := g.Store
	s.Reset()

	*s.Player = component.Player{
		Pos:         component.Vec2{X: config.PlayerStartX, Z: config.PlayerStartZ},
		Speed:       config.PlayerSpeed,
		AttackRange: config.PlayerAttackRange,
	}
	*s.Bonfire = component.Bonfire{
		HP:    config.BonfireMaxHP,
		MaxHP: config.BonfireMaxHP,
	}
	s.Weapons = []*component.Weapon{{Type: defs.WeaponBasic, Level: 1, Cooldown: 0}}
	*s.Match = component.Match{
		Wave:           1,
		ZombiesPerWave: config.ZombiesPerWave,
		WaveDelay:      config.InitialWaveDelay,
		Phase:          component.WaveDelayPhase,
	}
	g.started = true

	g.log.Info("match started", zap.Int64("seed", g.Rng.Seed()))
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchStarted})
}

// Tick продвигает симуляцию ровно на один шаг.
// До первого StartMatch, на паузе и после конца матча ничего не делает.
func (g *Game) Tick() {
	m := g.Store.Match
	if !g.started || m.Paused || m.Phase.IsTerminal() {
		return
	}
	m.Tick++

	if !g.WaveSystem.Update() {
		return
	}
	g.SpawnerSystem.Update()
	g.PickupSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	if m.Phase.IsTerminal() {
		return
	}
	g.ZombieSystem.Update()
	if m.Phase.IsTerminal() {
		return
	}
	g.VisualEffectSystem.Update()
}

// SetMoveDirection задаёт ручное направление движения. Вектор нормализуется;
// nil, нулевой или нечисловой вектор отключает ручное движение.
func (g *Game) SetMoveDirection(dir *component.Vec2) {
	m := g.Store.Match
	if dir == nil {
		m.MoveDirection = nil
		return
	}
	n, ok := dir.Normalize()
	if !ok {
		m.MoveDirection = nil
		return
	}
	m.MoveDirection = &n
}

// ToggleAutoCombat переключает автобой и сбрасывает текущую цель.
func (g *Game) ToggleAutoCombat() {
	m := g.Store.Match
	m.AutoCombat = !m.AutoCombat
	m.TargetID = 0
}

func (g *Game) SetPaused(paused bool) {
	g.Store.Match.Paused = paused
}

func (g *Game) TogglePause() {
	g.Store.Match.Paused = !g.Store.Match.Paused
}

func (g *Game) IsPaused() bool {
	return g.Store.Match.Paused
}

// Started — был ли начат хотя бы один матч.
func (g *Game) Started() bool {
	return g.started
}

func (g *Game) Score() int {
	return g.Store.Match.Score
}

func (g *Game) Wave() int {
	return g.Store.Match.Wave
}

func (g *Game) Phase() component.Phase {
	return g.Store.Match.Phase
}

func (g *Game) Outcome() component.Outcome {
	return g.Store.Match.Phase.Outcome()
}

func (g *Game) WaveDelay() int {
	return g.Store.Match.WaveDelay
}

func (g *Game) AutoCombat() bool {
	return g.Store.Match.AutoCombat
}

func (g *Game) BonfireHP() float64 {
	return g.Store.Bonfire.HP
}

// BonfireHPDisplay — здоровье костра, округлённое вверх, как его показывает HUD.
func (g *Game) BonfireHPDisplay() int {
	return int(math.Ceil(g.Store.Bonfire.HP))
}

// Weapons возвращает копию инвентаря в порядке получения.
func (g *Game) Weapons() []component.Weapon {
	return copyAll(g.Store.Weapons)
}

// Events возвращает диспетчер, чтобы представление могло подписаться на события.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}
