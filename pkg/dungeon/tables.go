package dungeon

import (
	"randroom/internal/core/types/enums"
	"randroom/pkg/utils"
)

// Transition - значение, действующее начиная с глубины Level.
type Transition struct {
	Level int
	Value int
}

// FromDungeonLevel возвращает значение последнего перехода с Level <= depth.
// Таблица отсортирована по Level. Если ни один не подошел - 0.
func FromDungeonLevel(table []Transition, depth int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if depth >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}

var (
	MaxMonstersTable = []Transition{{1, 2}, {4, 3}, {6, 5}}
	MaxItemsTable    = []Transition{{1, 1}, {4, 2}}
	TrollTable       = []Transition{{3, 15}, {5, 30}, {7, 60}}

	LightningTable = []Transition{{4, 25}}
	FireballTable  = []Transition{{6, 25}}
	ConfuseTable   = []Transition{{2, 10}}
	SwordTable     = []Transition{{4, 5}}
	ShieldTable    = []Transition{{8, 15}}
)

const (
	orcWeight  = 80
	healWeight = 35
)

// MonsterChances - веса монстров на глубине depth.
func MonsterChances(depth int) []utils.Weighted[EntityTemplate] {
	return []utils.Weighted[EntityTemplate]{
		{Weight: orcWeight, Item: Orc},
		{Weight: FromDungeonLevel(TrollTable, depth), Item: Troll},
	}
}

// ItemChances - веса предметов на глубине depth.
func ItemChances(depth int) []utils.Weighted[EntityTemplate] {
	return []utils.Weighted[EntityTemplate]{
		{Weight: healWeight, Item: ItemTemplates[enums.ItemHeal]},
		{Weight: FromDungeonLevel(LightningTable, depth), Item: ItemTemplates[enums.ItemLightning]},
		{Weight: FromDungeonLevel(FireballTable, depth), Item: ItemTemplates[enums.ItemFireball]},
		{Weight: FromDungeonLevel(ConfuseTable, depth), Item: ItemTemplates[enums.ItemConfuse]},
		{Weight: FromDungeonLevel(SwordTable, depth), Item: ItemTemplates[enums.ItemSword]},
		{Weight: FromDungeonLevel(ShieldTable, depth), Item: ItemTemplates[enums.ItemShield]},
	}
}
