package enums

import "strings"

// ItemKind определяет эффект предмета при использовании.
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemHeal
	ItemLightning
	ItemConfuse
	ItemFireball
	ItemSword
	ItemShield
)

var itemKindToString = map[ItemKind]string{
	ItemHeal:      "HEAL",
	ItemLightning: "LIGHTNING",
	ItemConfuse:   "CONFUSE",
	ItemFireball:  "FIREBALL",
	ItemSword:     "SWORD",
	ItemShield:    "SHIELD",
}

var itemKindFromString = map[string]ItemKind{
	"HEAL":      ItemHeal,
	"LIGHTNING": ItemLightning,
	"CONFUSE":   ItemConfuse,
	"FIREBALL":  ItemFireball,
	"SWORD":     ItemSword,
	"SHIELD":    ItemShield,
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemKind(s string) ItemKind {
	if val, ok := itemKindFromString[strings.ToUpper(s)]; ok {
		return val
	}
	return ItemUnknown
}

// Slot - место на теле, куда надевается экипировка.
type Slot uint8

const (
	SlotUnknown Slot = iota
	SlotLeftHand
	SlotRightHand
	SlotHead
)

var slotToString = map[Slot]string{
	SlotLeftHand:  "left hand",
	SlotRightHand: "right hand",
	SlotHead:      "head",
}

func (s Slot) String() string {
	if val, ok := slotToString[s]; ok {
		return val
	}
	return "unknown"
}
