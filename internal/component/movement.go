// component/movement.go
package component

import "math"

// Vec2 — точка или вектор на плоскости арены (оси X и Z).
type Vec2 struct {
	X, Z float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Z: v.Z * k}
}

// Len — евклидова длина вектора.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// DistanceTo — расстояние между двумя точками на плоскости.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого или нечислового вектора возвращает ok=false.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Z: v.Z / l}, true
}

// ClampToRadius радиально прижимает точку к окружности радиуса r вокруг начала координат.
func (v Vec2) ClampToRadius(r float64) Vec2 {
	l := v.Len()
	if l <= r {
		return v
	}
	return v.Scale(r / l)
}

// Polar строит точку по углу (радианы) и расстоянию от начала координат.
func Polar(angle, dist float64) Vec2 {
	return Vec2{X: math.Cos(angle) * dist, Z: math.Sin(angle) * dist}
}
