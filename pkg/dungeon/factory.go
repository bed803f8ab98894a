package dungeon

import (
	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
)

// NewPlayer создает героя новой партии. Позицию выставит генератор.
func NewPlayer() *domain.Entity {
	p := domain.NewEntity(0, 0, types.MakeGlyph(types.ColorWhite, '@'), "player", true)
	p.Alive = true
	p.Fighter = &domain.FighterComponent{
		HP:          100,
		BaseMaxHP:   100,
		BaseDefense: 1,
		BasePower:   2,
		XP:          0,
		OnDeath:     enums.DeathPlayer,
	}
	return p
}

// StartingKit - стартовый инвентарь: надетый кинжал.
func StartingKit() []*domain.Entity {
	dagger := Dagger.SpawnEntity(0, 0)
	dagger.Equipment.Equipped = true
	return []*domain.Entity{dagger}
}
