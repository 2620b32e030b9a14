// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp01 ограничивает значение отрезком [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Flicker — мерцание пламени костра: значение около 1 с амплитудой amp.
// tick — номер кадра, поэтому отрисовка не зависит от реального времени.
func Flicker(tick uint64, amp float64) float64 {
	t := float64(tick)
	return 1 + amp*(0.6*math.Sin(t*0.21)+0.4*math.Sin(t*0.53+1.3))
}
