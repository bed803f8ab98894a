package domain

import "randroom/internal/core/types/enums"

// --- КОМПОНЕНТЫ ---
// Сущность получает возможность через наличие компонента (nil = нет).

// FighterComponent - боевые характеристики.
// Base* без учета экипировки, итоговые значения считает systems.
type FighterComponent struct {
	HP          int               `json:"hp"`
	BaseMaxHP   int               `json:"baseMaxHp"`
	BaseDefense int               `json:"baseDefense"`
	BasePower   int               `json:"basePower"`
	XP          int               `json:"xp"`
	OnDeath     enums.DeathPolicy `json:"onDeath"`
}

// AIComponent - поведение монстра.
// Confused хранит предыдущее поведение в Previous и возвращает его,
// когда RemainingTurns доходит до нуля.
type AIComponent struct {
	Kind           enums.AIKind `json:"kind"`
	Previous       *AIComponent `json:"previous,omitempty"`
	RemainingTurns int          `json:"remainingTurns,omitempty"`
}

// ItemComponent - метка предмета, определяет эффект при использовании.
type ItemComponent struct {
	Kind enums.ItemKind `json:"kind"`
}

// EquipmentComponent - надеваемый предмет и его бонусы.
type EquipmentComponent struct {
	Slot         enums.Slot `json:"slot"`
	Equipped     bool       `json:"equipped"`
	PowerBonus   int        `json:"powerBonus,omitempty"`
	DefenseBonus int        `json:"defenseBonus,omitempty"`
	HPBonus      int        `json:"hpBonus,omitempty"`
}

// BasicAI возвращает обычное поведение монстра.
func BasicAI() *AIComponent {
	return &AIComponent{Kind: enums.AIBasic}
}

// Confuse оборачивает поведение в Confused на turns ходов.
// Вложенность не растет: повторное замешательство только сбрасывает таймер.
func Confuse(prev *AIComponent, turns int) *AIComponent {
	if prev != nil && prev.Kind == enums.AIConfused {
		prev = prev.Previous
	}
	return &AIComponent{
		Kind:           enums.AIConfused,
		Previous:       prev,
		RemainingTurns: turns,
	}
}
