package systems

import (
	"randroom/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  int  // Индекс сущности, в которую врезались (-1 если нет)
	IsWall     bool // Если врезались в стену
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(m *domain.Map, entities domain.Entities, idx, dx, dy int) MovementResult {
	target := entities[idx].Pos.Shift(dx, dy)
	res := MovementResult{NewX: target.X, NewY: target.Y, BlockedBy: -1}

	// 1. Границы и стены
	if m.IsBlocked(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// 2. Блокирующие сущности (кроме самого себя)
	for i, other := range entities {
		if i == idx || !other.Blocks {
			continue
		}
		if other.Pos == target {
			res.BlockedBy = i
			return res
		}
	}

	res.HasMoved = true
	return res
}

// MoveBy сдвигает сущность, если клетка свободна.
func MoveBy(m *domain.Map, entities domain.Entities, idx, dx, dy int) bool {
	res := CalculateMove(m, entities, idx, dx, dy)
	if res.HasMoved {
		entities[idx].SetPos(res.NewX, res.NewY)
	}
	return res.HasMoved
}

// MoveOrAttack - ход игрока: атака бойца на клетке или шаг.
// Возвращает false, если ход упёрся в стену.
func MoveOrAttack(g *domain.Game, entities domain.Entities, dx, dy int) bool {
	player := entities.Player()
	target := player.Pos.Shift(dx, dy)

	victim := entities.IndexAt(target.X, target.Y, func(e *domain.Entity) bool {
		return e.Fighter != nil && e.Alive
	})
	if victim > domain.PlayerIndex {
		Attack(g, entities, domain.PlayerIndex, victim)
		return true
	}
	return MoveBy(g.Map, entities, domain.PlayerIndex, dx, dy)
}

// moveTowards делает жадный шаг к цели: сначала по диагонали,
// затем скольжение по приоритетной оси.
func moveTowards(m *domain.Map, entities domain.Entities, idx int, target domain.Position) {
	e := entities[idx]
	dxRaw := target.X - e.Pos.X
	dyRaw := target.Y - e.Pos.Y
	stepX, stepY := sign(dxRaw), sign(dyRaw)

	// Попытка 1: Идеальный путь
	if MoveBy(m, entities, idx, stepX, stepY) {
		return
	}

	// Попытка 2: скольжение вдоль оси с большим отрывом
	if abs(dxRaw) > abs(dyRaw) {
		if stepX != 0 && MoveBy(m, entities, idx, stepX, 0) {
			return
		}
		if stepY != 0 {
			MoveBy(m, entities, idx, 0, stepY)
		}
		return
	}
	if stepY != 0 && MoveBy(m, entities, idx, 0, stepY) {
		return
	}
	if stepX != 0 {
		MoveBy(m, entities, idx, stepX, 0)
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
