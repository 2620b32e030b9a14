package app

import (
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/event"
	"bonfire-defense/internal/system"

	"go.uber.org/zap"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewGame(Options{Seed: seed})
	g.StartMatch()
	return g
}

// activate пропускает стартовую задержку, не трогая таймеры спавна.
func activate(g *Game) {
	g.Store.Match.Phase = component.ActivePhase
	g.Store.Match.WaveDelay = 0
}

// killOne ставит зомби с 1 hp вне дальности игрока и снаряд прямо на нём.
func killOne(g *Game) {
	pos := component.Vec2{X: 15}
	g.Store.AddZombie(&component.Zombie{Pos: pos, HP: 1, Speed: 0.03})
	g.Store.AddBullet(&component.Bullet{Pos: pos, Damage: 1, Weapon: defs.WeaponBasic})
	g.Tick()
}

func TestStartMatchInitialState(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Store
	if s.Player.Pos != (component.Vec2{X: 0, Z: 5}) {
		t.Errorf("player pos = %+v", s.Player.Pos)
	}
	if g.BonfireHP() != 10 || s.Bonfire.MaxHP != 10 {
		t.Errorf("bonfire = %+v", *s.Bonfire)
	}
	w := g.Weapons()
	if len(w) != 1 || w[0] != (component.Weapon{Type: defs.WeaponBasic, Level: 1, Cooldown: 0}) {
		t.Errorf("weapons = %+v", w)
	}
	if g.Wave() != 1 || g.Score() != 0 || g.WaveDelay() != 60 || g.Phase() != component.WaveDelayPhase {
		t.Errorf("match = %+v", *s.Match)
	}
	if g.AutoCombat() || g.Outcome() != component.OutcomeNone {
		t.Error("auto-combat must start off with no outcome")
	}
	if len(s.Zombies)+len(s.Bullets)+len(s.Particles)+len(s.Pickups) != 0 {
		t.Error("collections must start empty")
	}
}

func TestTickBeforeStartMatchIsNoop(t *testing.T) {
	g := NewGame(Options{Seed: 1})
	g.Tick()
	if g.Started() || g.Store.Match.Tick != 0 {
		t.Error("tick before StartMatch changed state")
	}
}

func TestStartMatchResetsPreviousMatch(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	killOne(g)
	g.ToggleAutoCombat()
	g.SetPaused(true)
	g.StartMatch()

	if g.Score() != 0 || g.AutoCombat() || g.IsPaused() || len(g.Store.Particles) != 0 {
		t.Errorf("state leaked into new match: %+v", *g.Store.Match)
	}
}

func TestInitialWaveDelayFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	g.Store.AddBullet(&component.Bullet{Pos: component.Vec2{}, Vel: component.Vec2{X: 0.3}})

	for i := 0; i < config.InitialWaveDelay-1; i++ {
		g.Tick()
	}
	if g.Phase() != component.WaveDelayPhase || g.Store.Match.SpawnTimer != 0 {
		t.Fatalf("simulation ran during delay: %+v", *g.Store.Match)
	}
	if g.Store.Bullets[0].Pos.X != 0 {
		t.Fatal("bullet moved during delay")
	}

	g.Tick()
	if g.Phase() != component.ActivePhase || g.Store.Match.SpawnTimer != 1 {
		t.Errorf("tick that ends the delay must run the rest: %+v", *g.Store.Match)
	}
}

func TestFifthKillAdvancesWave(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	for i := 0; i < 4; i++ {
		killOne(g)
	}
	if g.Wave() != 1 || g.Store.Match.KillsInWave != 4 {
		t.Fatalf("after 4 kills: %+v", *g.Store.Match)
	}
	killOne(g)
	m := g.Store.Match
	if m.Wave != 2 || m.KillsInWave != 0 || m.WaveDelay != 90 || m.Phase != component.WaveDelayPhase {
		t.Fatalf("after 5th kill: %+v", *m)
	}
	if g.Score() != 50 {
		t.Errorf("score = %d, want 50", g.Score())
	}
}

func TestThreeZombiesAtBonfire(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	for _, p := range []component.Vec2{{X: 1}, {Z: 1}, {X: -1}} {
		g.Store.AddZombie(&component.Zombie{Pos: p, HP: 10, Speed: 0.03})
	}
	g.Tick()
	if math.Abs(g.BonfireHP()-9.94) > 1e-9 {
		t.Errorf("hp = %.12f, want 9.94", g.BonfireHP())
	}
	if g.BonfireHPDisplay() != 10 {
		t.Errorf("display hp = %d, want ceil 10", g.BonfireHPDisplay())
	}
}

func TestFirePickupAppendsThenLevelsUp(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	drop := func() {
		g.Store.AddPickup(&component.WeaponPickup{Pos: g.Store.Player.Pos, Type: defs.WeaponFire, Life: config.PickupLife})
		g.Tick()
	}

	drop()
	w := g.Weapons()
	if len(w) != 2 || w[1] != (component.Weapon{Type: defs.WeaponFire, Level: 1, Cooldown: 0}) {
		t.Fatalf("after first pickup: %+v", w)
	}
	drop()
	w = g.Weapons()
	if len(w) != 2 || w[1].Level != 2 {
		t.Fatalf("after second pickup: %+v", w)
	}
}

func TestClearingFinalWaveIsVictory(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	var ended []event.MatchEndedData
	g.Events().Subscribe(event.MatchEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e.Data.(event.MatchEndedData))
	}))
	m := g.Store.Match
	m.Wave = 5
	m.KillsInWave = system.KillsToClear(m.ZombiesPerWave, 5, config.ZombiesIncrement) - 1
	m.Score = 100

	killOne(g)

	if g.Outcome() != component.OutcomeVictory {
		t.Fatalf("outcome = %s", g.Outcome())
	}
	if g.Score() != 100+50+500 {
		t.Errorf("score = %d, want 650", g.Score())
	}
	if len(ended) != 1 || ended[0].Score != 650 {
		t.Errorf("MatchEnded = %+v", ended)
	}

	tick := m.Tick
	g.Store.AddZombie(&component.Zombie{Pos: component.Vec2{X: 1}, HP: 1, Speed: 0.03})
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if m.Tick != tick || g.BonfireHP() != 10 {
		t.Error("ticks after victory must not change state")
	}
}

func TestDefeatWhenBonfireFalls(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	g.Store.Bonfire.HP = 0.01
	g.Store.AddZombie(&component.Zombie{Pos: component.Vec2{X: 1}, HP: 10, Speed: 0.03})
	g.Tick()
	if g.Outcome() != component.OutcomeDefeat || g.BonfireHP() != 0 || g.BonfireHPDisplay() != 0 {
		t.Fatalf("phase = %s hp = %f", g.Phase(), g.BonfireHP())
	}
	pos := g.Store.Zombies[0].Pos
	g.Tick()
	if g.Store.Zombies[0].Pos != pos {
		t.Error("zombies moved after defeat")
	}
}

func TestBulletLeavesArena(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	g.Store.AddBullet(&component.Bullet{Pos: component.Vec2{X: 19.9}, Vel: component.Vec2{X: 0.3}, Damage: 1})
	g.Tick()
	if len(g.Store.Bullets) != 0 {
		t.Error("bullet past x=20 must be removed")
	}
}

func TestPauseFreezesTick(t *testing.T) {
	g := newTestGame(t, 1)
	g.TogglePause()
	for i := 0; i < 100; i++ {
		g.Tick()
	}
	if g.WaveDelay() != 60 || g.Store.Match.Tick != 0 {
		t.Fatal("paused game advanced")
	}
	g.SetPaused(false)
	g.Tick()
	if g.WaveDelay() != 59 {
		t.Errorf("delay = %d after resume, want 59", g.WaveDelay())
	}
}

func TestSetMoveDirectionNormalizes(t *testing.T) {
	g := newTestGame(t, 1)
	g.SetMoveDirection(&component.Vec2{X: 3, Z: 4})
	d := g.Store.Match.MoveDirection
	if d == nil || math.Abs(d.X-0.6) > 1e-12 || math.Abs(d.Z-0.8) > 1e-12 {
		t.Fatalf("direction = %+v", d)
	}
	for _, v := range []*component.Vec2{nil, {}, {X: math.NaN()}} {
		g.SetMoveDirection(&component.Vec2{X: 1})
		g.SetMoveDirection(v)
		if g.Store.Match.MoveDirection != nil {
			t.Errorf("SetMoveDirection(%v) must clear manual movement", v)
		}
	}
}

func TestToggleAutoCombatClearsTarget(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	g.ToggleAutoCombat()
	g.Store.AddZombie(&component.Zombie{Pos: component.Vec2{X: 14}, HP: 10, Speed: 0.03})
	g.Tick()
	if g.Store.Match.TargetID == 0 {
		t.Fatal("auto-combat did not pick a target")
	}
	g.ToggleAutoCombat()
	if g.AutoCombat() || g.Store.Match.TargetID != 0 {
		t.Error("toggle must clear the target")
	}
}

// Длинный прогон с автобоем: проверяем инварианты на каждом тике.
func TestLongRunInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g := newTestGame(t, seed)
		g.ToggleAutoCombat()
		hp, score := g.BonfireHP(), g.Score()
		for i := 0; i < 30000 && !g.Phase().IsTerminal(); i++ {
			g.Tick()
			m := g.Store.Match
			if g.BonfireHP() > hp || g.BonfireHP() < 0 {
				t.Fatalf("seed %d tick %d: hp %f after %f", seed, i, g.BonfireHP(), hp)
			}
			if g.Score() < score {
				t.Fatalf("seed %d tick %d: score dropped %d -> %d", seed, i, score, g.Score())
			}
			if n := len(g.Store.Weapons); n < 1 || n > config.MaxWeapons {
				t.Fatalf("seed %d tick %d: %d weapons", seed, i, n)
			}
			if n := len(g.Store.Zombies); n > system.ZombieCap(m.ZombiesPerWave, m.Wave) {
				t.Fatalf("seed %d tick %d: %d zombies over cap", seed, i, n)
			}
			if p := g.Store.Player.Pos.Len(); p > config.ArenaRadius+1e-9 {
				t.Fatalf("seed %d tick %d: player outside arena at %f", seed, i, p)
			}
			hp, score = g.BonfireHP(), g.Score()
		}
	}
}

func TestSameSeedSameMatch(t *testing.T) {
	run := func() *Snapshot {
		g := newTestGame(t, 99)
		g.ToggleAutoCombat()
		for i := 0; i < 3000; i++ {
			g.Tick()
		}
		return g.Snapshot()
	}
	a, _ := json.Marshal(run())
	b, _ := json.Marshal(run())
	if string(a) != string(b) {
		t.Error("same seed produced different matches")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, 1)
	g.Store.AddZombie(&component.Zombie{Pos: component.Vec2{X: 3}, HP: 2})
	snap := g.Snapshot()
	g.Store.Zombies[0].HP = 1
	g.Store.Weapons[0].Level = 3
	if snap.Zombies[0].HP != 2 || snap.Weapons[0].Level != 1 {
		t.Error("snapshot shares memory with the store")
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["phase"] != "wave_delay" || decoded["outcome"] != "none" {
		t.Errorf("phase/outcome encoded as %v/%v", decoded["phase"], decoded["outcome"])
	}
	if decoded["kills_needed"] != float64(5) {
		t.Errorf("kills_needed = %v", decoded["kills_needed"])
	}
}

func TestFromSettings(t *testing.T) {
	cfg := config.Defaults()
	cfg.Game.Seed = 11
	g, err := FromSettings(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("FromSettings: %v", err)
	}
	if g.Rng.Seed() != 11 || g.WeaponDefs != defs.DefaultWeapons() {
		t.Error("defaults not applied")
	}

	cfg.Game.WeaponsFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := FromSettings(cfg, zap.NewNop()); err == nil {
		t.Error("missing weapons file must fail")
	}
}

func TestZombieOnPlayerIsHitInSameTick(t *testing.T) {
	g := newTestGame(t, 1)
	activate(g)
	g.Store.AddZombie(&component.Zombie{Pos: g.Store.Player.Pos, HP: 1})
	g.Tick()

	if n := len(g.Store.Zombies); n != 0 {
		t.Fatalf("zombies left = %d, want the one on the player killed this tick", n)
	}
	if len(g.Store.Bullets) != 0 {
		t.Error("the zero-velocity bullet must be consumed by the hit")
	}
	if g.Store.Match.KillsInWave != 1 {
		t.Errorf("kills = %d, want 1", g.Store.Match.KillsInWave)
	}
}
