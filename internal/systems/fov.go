package systems

import (
	"delve-server/internal/domain"
)

// Реализация FOV-коллаборатора: рекурсивный shadowcasting.
// Ядро потребляет её через движковый хук VisibilityFn и в тестах
// подменяет на заглушку.

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает мапу индексов клеток {index: true},
// видимых из origin в радиусе radius.
func ComputeVisibleTiles(m *domain.GameMap, origin domain.Position, radius int) map[int]bool {
	visibleMap := make(map[int]bool)
	if radius <= 0 {
		return visibleMap // Слепой
	}

	// Центр всегда виден
	visibleMap[m.GetIndex(origin.X, origin.Y)] = true

	// Рекурсивный shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	return visibleMap
}

func castLight(m *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.InBounds(x, y) {
				if float64(dx*dx+dy*dy) < radiusSq {
					visibleMap[m.GetIndex(x, y)] = true
				}
			}

			if blocked {
				// Идем вдоль непрозрачной полосы
				if isOpaque(m, x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на препятствие
				if isOpaque(m, x, y) && j < radius {
					blocked = true
					// Рекурсивно сканируем следующий ряд
					castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isOpaque проверяет, блокирует ли клетка взгляд
func isOpaque(m *domain.GameMap, x, y int) bool {
	// Выход за границы считается блокирующим
	if !m.InBounds(x, y) {
		return true
	}
	return !m.Tiles[y][x].Transparent
}
