package utils

import "math"

// Round1 округляет до одного знака, половинки — от нуля (4.35 -> 4.4, -4.35 -> -4.4).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PercentOf возвращает целочисленный процент part от total; 0 при total <= 0.
func PercentOf(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
