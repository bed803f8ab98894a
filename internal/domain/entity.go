package domain

import "randroom/internal/core/types"

// Entity - всё, что стоит на карте: игрок, монстры, предметы, лестница.
// Поведение определяется набором компонентов, а не типом.
type Entity struct {
	Pos           Position    `json:"pos"`
	Glyph         types.Glyph `json:"glyph"`
	Name          string      `json:"name"`
	Blocks        bool        `json:"blocks"`
	Alive         bool        `json:"alive"`
	AlwaysVisible bool        `json:"alwaysVisible"`
	Level         int         `json:"level"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Fighter   *FighterComponent   `json:"fighter,omitempty"`
	AI        *AIComponent        `json:"ai,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`
	Equipment *EquipmentComponent `json:"equipment,omitempty"`
}

// NewEntity создает сущность без компонентов.
func NewEntity(x, y int, glyph types.Glyph, name string, blocks bool) *Entity {
	return &Entity{
		Pos:    Position{X: x, Y: y},
		Glyph:  glyph,
		Name:   name,
		Blocks: blocks,
		Alive:  false,
		Level:  1,
	}
}

func (e *Entity) SetPos(x, y int) {
	e.Pos = Position{X: x, Y: y}
}

// DistanceTo - расстояние между центрами клеток двух сущностей.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.DistanceTo(other.Pos)
}

// IsMonster - живой боец с AI.
func (e *Entity) IsMonster() bool {
	return e.Alive && e.Fighter != nil && e.AI != nil
}
