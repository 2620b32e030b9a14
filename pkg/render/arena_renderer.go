package render

import (
	"image/color"
	"math"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Размеры фигур в единицах арены.
const (
	playerRadius  = 0.5
	zombieRadius  = 0.45
	bonfireRadius = 0.9
	pickupSize    = 0.7
	particleSize  = 0.12
)

// ArenaRenderer рисует арену сверху: ось X мира — вправо, ось Z — вниз.
type ArenaRenderer struct {
	centerX, centerY float32
	scale            float32
	screenWidth      int
	screenHeight     int
	weaponColors     map[defs.WeaponType]color.RGBA
	groundImage      *ebiten.Image // предрендеренный фон с ареной
}

func NewArenaRenderer(weapons *defs.WeaponTable, screenWidth, screenHeight int, scale float32) *ArenaRenderer {
	colors := make(map[defs.WeaponType]color.RGBA, len(defs.AllWeaponTypes))
	for _, wt := range defs.AllWeaponTypes {
		c := config.TextLightColor
		if def, ok := weapons.Get(wt); ok {
			if parsed, err := ParseHexColor(def.Color); err == nil {
				c = parsed
			}
		}
		colors[wt] = c
	}
	return &ArenaRenderer{
		centerX:      float32(screenWidth) / 2,
		centerY:      float32(screenHeight) / 2,
		scale:        scale,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		weaponColors: colors,
	}
}

// WorldToScreen переводит точку арены в пиксели экрана.
func (r *ArenaRenderer) WorldToScreen(p component.Vec2) (float32, float32) {
	return r.centerX + float32(p.X)*r.scale, r.centerY + float32(p.Z)*r.scale
}

// ScreenToWorld — обратное преобразование.
func (r *ArenaRenderer) ScreenToWorld(x, y float32) component.Vec2 {
	return component.Vec2{
		X: float64((x - r.centerX) / r.scale),
		Z: float64((y - r.centerY) / r.scale),
	}
}

// WeaponColor возвращает цвет оружия из таблицы определений.
func (r *ArenaRenderer) WeaponColor(wt defs.WeaponType) color.RGBA {
	if c, ok := r.weaponColors[wt]; ok {
		return c
	}
	return config.TextLightColor
}

func (r *ArenaRenderer) renderGround() {
	r.groundImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.groundImage.Fill(config.BackgroundColor)
	radius := float32(config.ArenaRadius) * r.scale
	vector.DrawFilledCircle(r.groundImage, r.centerX, r.centerY, radius, config.GroundColor, true)
	vector.StrokeCircle(r.groundImage, r.centerX, r.centerY, radius, 2, config.ArenaEdgeColor, true)
}

// Draw рисует снимок матча.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, s *app.Snapshot) {
	if r.groundImage == nil {
		r.renderGround()
	}
	screen.DrawImage(r.groundImage, nil)
	if s == nil {
		return
	}

	r.drawBonfire(screen, s)
	for _, p := range s.Pickups {
		r.drawPickup(screen, p)
	}
	r.drawPlayer(screen, s)
	for _, z := range s.Zombies {
		x, y := r.WorldToScreen(z.Pos)
		vector.DrawFilledCircle(screen, x, y, zombieRadius*r.scale, config.ZombieColor, true)
		if s.AutoCombat && z.ID == s.TargetID {
			vector.StrokeCircle(screen, x, y, zombieRadius*r.scale+3, 2, config.AutoOnColor, true)
		}
	}
	for _, b := range s.Bullets {
		x, y := r.WorldToScreen(b.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(b.Size)*r.scale, r.WeaponColor(b.Weapon), true)
	}
	for _, p := range s.Particles {
		x, y := r.WorldToScreen(p.Pos)
		size := particleSize * r.scale * 2
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, WithAlpha(config.ParticleColor, p.Alpha()), true)
	}
}

func (r *ArenaRenderer) drawBonfire(screen *ebiten.Image, s *app.Snapshot) {
	x, y := r.WorldToScreen(s.Bonfire.Pos)
	// Пламя гаснет вместе со здоровьем костра.
	hp := 0.0
	if s.Bonfire.MaxHP > 0 {
		hp = s.Bonfire.HP / s.Bonfire.MaxHP
	}
	flicker := float32(utils.Flicker(s.Tick, 0.15))
	outer := bonfireRadius * r.scale * utils.Lerp(0.4, 1, float32(hp)) * flicker
	vector.DrawFilledCircle(screen, x, y, float32(config.BonfireAttackRadius)*r.scale, WithAlpha(config.BonfireColor, 0.12), true)
	vector.DrawFilledCircle(screen, x, y, outer, config.BonfireColor, true)
	vector.DrawFilledCircle(screen, x, y, outer*0.5, config.BonfireCoreColor, true)
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, s *app.Snapshot) {
	x, y := r.WorldToScreen(s.Player.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(s.Player.AttackRange)*r.scale, config.RangeColor, true)
	vector.DrawFilledCircle(screen, x, y, playerRadius*r.scale, config.PlayerColor, true)
}

func (r *ArenaRenderer) drawPickup(screen *ebiten.Image, p component.WeaponPickup) {
	x, y := r.WorldToScreen(p.Pos)
	// последние две секунды предмет мигает
	if p.Life < 2*config.TicksPerSecond && (p.Life/8)%2 == 0 {
		return
	}
	pulse := float32(1 + 0.1*math.Sin(float64(p.Life)*0.15))
	size := pickupSize * r.scale * pulse
	c := r.WeaponColor(p.Type)
	vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, c, true)
	vector.StrokeRect(screen, x-size/2, y-size/2, size, size, 1, color.White, true)
}
