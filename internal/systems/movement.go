package systems

import (
	"delve-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall     bool           // Если врезались в стену или границу
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
// AI использует это для спекулятивной оценки хода без отката.
func CalculateMove(e *domain.Entity, dx, dy int, m *domain.GameMap) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)
	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Границы и стены
	if !m.IsWalkable(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 2. Блокирующие сущности
	if blocker := m.GetBlockingEntityAt(targetPos.X, targetPos.Y); blocker != nil && blocker.ID != e.ID {
		res.BlockedBy = blocker
		return res
	}

	res.HasMoved = true
	return res
}
