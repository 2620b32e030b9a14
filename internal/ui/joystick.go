package ui

import (
	"math"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Joystick — экранный джойстик: тянем ручку от центра, получаем направление.
// Работает и мышью, и касанием.
type Joystick struct {
	BaseX, BaseY float64
	Radius       float64
	KnobRadius   float64
	Deadzone     float64 // доля радиуса, внутри которой направления нет

	active  bool
	mouse   bool
	touchID ebiten.TouchID
	knobX   float64
	knobY   float64
}

func NewJoystick(x, y float64) *Joystick {
	return &Joystick{
		BaseX:      x,
		BaseY:      y,
		Radius:     config.JoystickRadius,
		KnobRadius: config.JoystickKnob,
		Deadzone:   config.JoystickDeadzone,
		knobX:      x,
		knobY:      y,
	}
}

// JoystickDirection переводит смещение ручки в направление на арене.
// Экранная ось Y совпадает с осью Z арены. ok=false — ручка в мёртвой зоне.
func JoystickDirection(dx, dy, radius, deadzone float64) (component.Vec2, bool) {
	if radius <= 0 {
		return component.Vec2{}, false
	}
	if math.Hypot(dx, dy)/radius < deadzone {
		return component.Vec2{}, false
	}
	return component.Vec2{X: dx, Z: dy}.Normalize()
}

// KeysDirection собирает направление из нажатых клавиш.
func KeysDirection(up, down, left, right bool) (component.Vec2, bool) {
	var v component.Vec2
	if up {
		v.Z--
	}
	if down {
		v.Z++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v.Normalize()
}

func (j *Joystick) contains(x, y int) bool {
	return math.Hypot(float64(x)-j.BaseX, float64(y)-j.BaseY) <= j.Radius*1.5
}

// Active — удерживается ли ручка.
func (j *Joystick) Active() bool {
	return j.active
}

// Update обрабатывает ввод. Возвращает направление и признак, что оно задано.
func (j *Joystick) Update() (component.Vec2, bool) {
	if !j.active {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if x, y := ebiten.CursorPosition(); j.contains(x, y) {
				j.active, j.mouse = true, true
			}
		}
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			if x, y := ebiten.TouchPosition(id); j.contains(x, y) {
				j.active, j.mouse, j.touchID = true, false, id
				break
			}
		}
	}
	if !j.active {
		return component.Vec2{}, false
	}

	var x, y int
	if j.mouse {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			j.release()
			return component.Vec2{}, false
		}
		x, y = ebiten.CursorPosition()
	} else {
		if inpututil.IsTouchJustReleased(j.touchID) {
			j.release()
			return component.Vec2{}, false
		}
		x, y = ebiten.TouchPosition(j.touchID)
	}

	dx, dy := float64(x)-j.BaseX, float64(y)-j.BaseY
	if d := math.Hypot(dx, dy); d > j.Radius {
		dx, dy = dx*j.Radius/d, dy*j.Radius/d
	}
	j.knobX, j.knobY = j.BaseX+dx, j.BaseY+dy
	return JoystickDirection(dx, dy, j.Radius, j.Deadzone)
}

func (j *Joystick) release() {
	j.active = false
	j.knobX, j.knobY = j.BaseX, j.BaseY
}

func (j *Joystick) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(j.BaseX), float32(j.BaseY), float32(j.Radius), config.JoystickBaseColor, true)
	vector.DrawFilledCircle(screen, float32(j.knobX), float32(j.knobY), float32(j.KnobRadius), config.JoystickKnobColor, true)
}
