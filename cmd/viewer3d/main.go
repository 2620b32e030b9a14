// cmd/viewer3d/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/assets"
	"bonfire-defense/internal/audio"
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/debug"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/logging"
	"bonfire-defense/internal/utils"
	"bonfire-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

var backgroundColor = rl.NewColor(10, 10, 20, 255)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

// toRL переводит цвет из image/color в rl.Color.
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// ground — точка арены на плоскости y = height.
func ground(p component.Vec2, height float32) rl.Vector3 {
	return rl.NewVector3(float32(p.X), height, float32(p.Z))
}

func main() {
	configPath := flag.String("config", "", "path to settings TOML (or $"+config.EnvConfigPath+")")
	assetsDir := flag.String("assets", "assets", "directory with optional models/<kind>.obj overrides")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	game, err := app.FromSettings(cfg, log)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
	}
	sound := audio.NewPlayer(cfg.Audio, log)
	if err := sound.Init(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}
	sound.Listen(game.Events())
	defer sound.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed := debug.Start(ctx, cfg.Debug, log)

	rl.InitWindow(screenWidth, screenHeight, cfg.Window.Title+" 3D | Q/E - Rotate, Mouse Wheel - Change Angle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	models := assets.NewModelManager(*assetsDir, log)
	models.Load()
	defer models.Cleanup()

	weaponColors := make(map[defs.WeaponType]rl.Color, len(defs.AllWeaponTypes))
	for _, wt := range defs.AllWeaponTypes {
		c := rl.White
		if def, ok := game.WeaponDefs.Get(wt); ok {
			if parsed, err := render.ParseHexColor(def.Color); err == nil {
				c = toRL(parsed)
			}
		}
		weaponColors[wt] = c
	}

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(18, 26, 26)
	topDownPos := rl.NewVector3(0, 42, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.3)

	game.StartMatch()

	for !rl.WindowShouldClose() {
		// --- Камера ---
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = float32(utils.Clamp01(float64(cameraAngleT + wheel*0.05)))
			cameraAngleT = min(cameraAngleT, 0.99)
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		// --- Ввод ---
		switch {
		case rl.IsKeyPressed(rl.KeyP):
			game.TogglePause()
		case rl.IsKeyPressed(rl.KeyF):
			game.ToggleAutoCombat()
		case rl.IsKeyPressed(rl.KeyEnter) && game.Phase().IsTerminal():
			game.StartMatch()
		}
		steer(game, camera)

		game.Tick()
		snap := game.Snapshot()
		if feed != nil {
			feed.Publish(snap)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)
		drawArena(snap, models, weaponColors, camera)
		rl.EndMode3D()
		drawHUD(snap)
		rl.DrawFPS(10, screenHeight-24)
		rl.EndDrawing()
	}
}

// steer задаёт направление движения стрелками/WASD относительно камеры:
// «вперёд» — от камеры к центру арены.
func steer(game *app.Game, camera rl.Camera3D) {
	var fwd, right float64
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		fwd++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		fwd--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		right++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		right--
	}
	if fwd == 0 && right == 0 {
		game.SetMoveDirection(nil)
		return
	}
	view, ok := component.Vec2{
		X: float64(camera.Target.X - camera.Position.X),
		Z: float64(camera.Target.Z - camera.Position.Z),
	}.Normalize()
	if !ok {
		view = component.Vec2{Z: -1}
	}
	side := component.Vec2{X: -view.Z, Z: view.X}
	dir := view.Scale(fwd).Add(side.Scale(right))
	game.SetMoveDirection(&dir)
}

func drawArena(s *app.Snapshot, models *assets.ModelManager, weaponColors map[defs.WeaponType]rl.Color, camera rl.Camera3D) {
	rl.DrawCylinder(rl.NewVector3(0, -0.05, 0), config.ArenaRadius, config.ArenaRadius, 0.05, 48, toRL(config.GroundColor))
	rl.DrawCircle3D(rl.NewVector3(0, 0.01, 0), config.ArenaRadius, rl.NewVector3(1, 0, 0), 90, rl.SkyBlue)

	// --- Эффект тумана ---
	fog := func(pos rl.Vector3, c rl.Color) rl.Color {
		distance := rl.Vector3Distance(camera.Position, pos)
		fogStart, fogEnd := float32(30.0), float32(70.0)
		f := (distance - fogStart) / (fogEnd - fogStart)
		return ColorLerp(c, backgroundColor, float32(utils.Clamp01(float64(f))))
	}
	draw := func(kind assets.Kind, pos rl.Vector3, scale float32, c rl.Color) {
		if model, ok := models.GetModel(kind); ok {
			rl.DrawModel(model, pos, scale, fog(pos, c))
		}
	}

	hp := 0.0
	if s.Bonfire.MaxHP > 0 {
		hp = s.Bonfire.HP / s.Bonfire.MaxHP
	}
	flame := float32(utils.Flicker(s.Tick, 0.15) * (0.4 + 0.6*hp))
	draw(assets.KindBonfire, ground(s.Bonfire.Pos, 0.75*flame), flame, toRL(config.BonfireColor))

	draw(assets.KindPlayer, ground(s.Player.Pos, 0.8), 1, toRL(config.PlayerColor))
	rl.DrawCircle3D(ground(s.Player.Pos, 0.02), float32(s.Player.AttackRange), rl.NewVector3(1, 0, 0), 90, rl.Fade(rl.SkyBlue, 0.4))

	for _, z := range s.Zombies {
		c := toRL(config.ZombieColor)
		if s.AutoCombat && z.ID == s.TargetID {
			c = rl.Red
		}
		draw(assets.KindZombie, ground(z.Pos, 0.7), 1, c)
	}
	for _, b := range s.Bullets {
		draw(assets.KindBullet, ground(b.Pos, 0.8), float32(b.Size), weaponColors[b.Weapon])
	}
	for _, p := range s.Pickups {
		bob := float32(0.5 + 0.2*float64(p.Life%60)/60)
		draw(assets.KindPickup, ground(p.Pos, bob), 1, weaponColors[p.Type])
	}
	for _, p := range s.Particles {
		draw(assets.KindParticle, ground(p.Pos, 0.5), 1, rl.Fade(toRL(config.ParticleColor), float32(p.Alpha())))
	}
}

func drawHUD(s *app.Snapshot) {
	rl.DrawText(fmt.Sprintf("SCORE %d", s.Score), 10, 10, 24, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("WAVE %d/%d  KILLS %d/%d", min(s.Wave, config.FinalWave), config.FinalWave, s.KillsInWave, s.KillsNeeded), 10, 40, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("BONFIRE %d/%d", s.BonfireHPDisplay, int(s.Bonfire.MaxHP)), 10, 66, 20, rl.Orange)

	y := int32(96)
	for _, w := range s.Weapons {
		line := fmt.Sprintf("%s L%d", w.Type, w.Level)
		if w.Cooldown > 0 {
			line += fmt.Sprintf(" (%d)", w.Cooldown)
		}
		rl.DrawText(line, 10, y, 18, rl.LightGray)
		y += 22
	}

	auto := "AUTO OFF [F]"
	if s.AutoCombat {
		auto = "AUTO ON [F]"
	}
	rl.DrawText(auto, screenWidth-170, 10, 20, rl.RayWhite)

	switch {
	case s.Phase == component.WaveDelayPhase && s.WaveDelay > 0:
		msg := fmt.Sprintf("NEXT WAVE %.1fs", float64(s.WaveDelay)/config.TicksPerSecond)
		rl.DrawText(msg, screenWidth/2-rl.MeasureText(msg, 28)/2, 20, 28, rl.SkyBlue)
	case s.Phase.IsTerminal():
		msg, c := "DEFEAT", rl.Red
		if s.Outcome == component.OutcomeVictory {
			msg, c = "VICTORY", rl.Gold
		}
		rl.DrawText(msg, screenWidth/2-rl.MeasureText(msg, 64)/2, screenHeight/2-64, 64, c)
		hint := "ENTER - NEW MATCH"
		rl.DrawText(hint, screenWidth/2-rl.MeasureText(hint, 20)/2, screenHeight/2+10, 20, rl.RayWhite)
	}
	if s.Paused {
		rl.DrawText("PAUSED", screenWidth/2-rl.MeasureText("PAUSED", 48)/2, screenHeight/2-140, 48, rl.RayWhite)
	}
}
