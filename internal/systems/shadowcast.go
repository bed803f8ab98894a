package systems

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ShadowcastFOV - рекурсивный shadowcasting без внешних зависимостей.
// Несимметричен, зато дешевле на больших радиусах.
type ShadowcastFOV struct {
	fovGrid
}

func NewShadowcastFOV(w, h int) *ShadowcastFOV {
	return &ShadowcastFOV{fovGrid: newFOVGrid(w, h)}
}

func (f *ShadowcastFOV) Compute(x, y, radius int, lightWalls bool) {
	clear(f.visible)
	if !f.inBounds(x, y) {
		return
	}
	if radius <= 0 {
		radius = max(f.w, f.h)
	}

	// 1. Центр всегда виден
	f.visible[f.idx(x, y)] = true

	// 2. Сканируем 8 октантов
	for oct := 0; oct < 8; oct++ {
		f.castLight(x, y, 1, 1.0, 0.0, radius, lightWalls,
			multipliers[0][oct], multipliers[1][oct],
			multipliers[2][oct], multipliers[3][oct])
	}
}

func (f *ShadowcastFOV) castLight(cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Наклоны краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy
			f.mark(cx, cy, X, Y, radius, lightWalls)

			opaque := !f.isTransparent(X, Y)
			switch {
			case blocked && opaque:
				// Идем вдоль стены
				newStart = rSlope
			case blocked:
				// Стена кончилась
				blocked = false
				start = newStart
			case opaque && j < radius:
				// Наткнулись на стену: следующий ряд сканируем рекурсивно
				blocked = true
				f.castLight(cx, cy, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
