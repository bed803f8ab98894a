package dungeon

import (
	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Name   string
	Glyph  types.Glyph
	Blocks bool

	Fighter   *domain.FighterComponent
	AI        bool
	Item      enums.ItemKind
	Equipment *domain.EquipmentComponent
}

// SpawnEntity создает сущность из шаблона на заданной позиции.
// Компоненты копируются, шаблон остается нетронутым.
func (t EntityTemplate) SpawnEntity(x, y int) *domain.Entity {
	e := domain.NewEntity(x, y, t.Glyph, t.Name, t.Blocks)

	// Бойцы
	if t.Fighter != nil {
		f := *t.Fighter
		e.Fighter = &f
		e.Alive = true
	}
	if t.AI {
		e.AI = domain.BasicAI()
	}

	// Предметы видны на исследованной карте всегда
	if t.Item != enums.ItemUnknown {
		e.Item = &domain.ItemComponent{Kind: t.Item}
		e.AlwaysVisible = true
	}
	if t.Equipment != nil {
		eq := *t.Equipment
		e.Equipment = &eq
	}
	return e
}

// --- ВРАГИ ---

var Orc = EntityTemplate{
	Name:   "orc",
	Glyph:  types.MakeGlyph(types.ColorDesatGreen, 'o'),
	Blocks: true,
	Fighter: &domain.FighterComponent{
		HP: 20, BaseMaxHP: 20, BaseDefense: 0, BasePower: 4, XP: 35,
		OnDeath: enums.DeathMonster,
	},
	AI: true,
}

var Troll = EntityTemplate{
	Name:   "troll",
	Glyph:  types.MakeGlyph(types.ColorDarkerGreen, 'T'),
	Blocks: true,
	Fighter: &domain.FighterComponent{
		HP: 30, BaseMaxHP: 30, BaseDefense: 2, BasePower: 8, XP: 100,
		OnDeath: enums.DeathMonster,
	},
	AI: true,
}

// --- ПРЕДМЕТЫ ---

var HealingPotion = EntityTemplate{
	Name:  "healing potion",
	Glyph: types.MakeGlyph(types.ColorViolet, '!'),
	Item:  enums.ItemHeal,
}

var LightningScroll = EntityTemplate{
	Name:  "scroll of lightning bolt",
	Glyph: types.MakeGlyph(types.ColorLightYellow, '#'),
	Item:  enums.ItemLightning,
}

var FireballScroll = EntityTemplate{
	Name:  "scroll of fireball",
	Glyph: types.MakeGlyph(types.ColorLightRed, '#'),
	Item:  enums.ItemFireball,
}

var ConfusionScroll = EntityTemplate{
	Name:  "scroll of confusion",
	Glyph: types.MakeGlyph(types.ColorLightViolet, '#'),
	Item:  enums.ItemConfuse,
}

var Sword = EntityTemplate{
	Name:  "sword",
	Glyph: types.MakeGlyph(types.ColorSky, '/'),
	Item:  enums.ItemSword,
	Equipment: &domain.EquipmentComponent{
		Slot:       enums.SlotRightHand,
		PowerBonus: 3,
	},
}

var Shield = EntityTemplate{
	Name:  "shield",
	Glyph: types.MakeGlyph(types.ColorDarkerOrange, '['),
	Item:  enums.ItemShield,
	Equipment: &domain.EquipmentComponent{
		Slot:         enums.SlotLeftHand,
		DefenseBonus: 1,
	},
}

// Dagger - стартовое оружие, в подземелье не встречается.
var Dagger = EntityTemplate{
	Name:  "dagger",
	Glyph: types.MakeGlyph(types.ColorSky, '-'),
	Item:  enums.ItemSword,
	Equipment: &domain.EquipmentComponent{
		Slot:       enums.SlotLeftHand,
		PowerBonus: 2,
	},
}

// ItemTemplates - предметы по виду (для отладки и тестов).
var ItemTemplates = map[enums.ItemKind]EntityTemplate{
	enums.ItemHeal:      HealingPotion,
	enums.ItemLightning: LightningScroll,
	enums.ItemFireball:  FireballScroll,
	enums.ItemConfuse:   ConfusionScroll,
	enums.ItemSword:     Sword,
	enums.ItemShield:    Shield,
}
