package domain

import "fmt"

// PlayerIndex - игрок всегда лежит в коллекции под индексом 0.
const PlayerIndex = 0

// Entities - упорядоченная коллекция сущностей уровня.
type Entities []*Entity

// Player возвращает сущность игрока.
func (es Entities) Player() *Entity {
	if len(es) == 0 {
		panic("entities: collection has no player")
	}
	return es[PlayerIndex]
}

// Pair выдает две разные сущности коллекции для одновременного изменения
// (атакующий и цель). Одинаковые индексы - ошибка вызывающего кода.
func (es Entities) Pair(i, j int) (*Entity, *Entity) {
	if i == j {
		panic(fmt.Sprintf("entities: Pair called with equal indices %d", i))
	}
	if i < 0 || j < 0 || i >= len(es) || j >= len(es) {
		panic(fmt.Sprintf("entities: Pair(%d, %d) out of range (len %d)", i, j, len(es)))
	}
	return es[i], es[j]
}

// BlockingAt возвращает true, если на клетке стоит блокирующая сущность.
func (es Entities) BlockingAt(x, y int) bool {
	for _, e := range es {
		if e.Blocks && e.Pos.X == x && e.Pos.Y == y {
			return true
		}
	}
	return false
}

// IndexAt ищет первую сущность на клетке, удовлетворяющую pred (nil = любая).
// Возвращает -1, если не нашли.
func (es Entities) IndexAt(x, y int, pred func(*Entity) bool) int {
	for i, e := range es {
		if e.Pos.X != x || e.Pos.Y != y {
			continue
		}
		if pred == nil || pred(e) {
			return i
		}
	}
	return -1
}

// Remove удаляет сущность с сохранением порядка остальных.
func (es Entities) Remove(i int) (Entities, *Entity) {
	if i == PlayerIndex {
		panic("entities: the player cannot be removed")
	}
	removed := es[i]
	return append(es[:i], es[i+1:]...), removed
}

// IsBlocked - клетка занята рельефом или блокирующей сущностью.
func IsBlocked(m *Map, es Entities, x, y int) bool {
	return m.IsBlocked(x, y) || es.BlockingAt(x, y)
}
