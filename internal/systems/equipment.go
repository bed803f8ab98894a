package systems

import (
	"errors"
	"fmt"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
)

var (
	ErrNotAnItem      = errors.New("not an item")
	ErrNotEquipment   = errors.New("not equipment")
	ErrBadInventoryID = errors.New("no such inventory slot")
)

// EquippedInSlot возвращает индекс надетого в slot предмета или -1.
func EquippedInSlot(g *domain.Game, slot enums.Slot) int {
	for i, it := range g.Inventory {
		if it.Equipment != nil && it.Equipment.Equipped && it.Equipment.Slot == slot {
			return i
		}
	}
	return -1
}

func inventoryItem(g *domain.Game, invIdx int) (*domain.Entity, error) {
	if invIdx < 0 || invIdx >= len(g.Inventory) {
		return nil, fmt.Errorf("%w: %d", ErrBadInventoryID, invIdx)
	}
	return g.Inventory[invIdx], nil
}

// TryEquip надевает предмет. Занятый слот освобождается заранее.
func TryEquip(g *domain.Game, invIdx int) (string, error) {
	item, err := inventoryItem(g, invIdx)
	if err != nil {
		return "", err
	}
	if item.Item == nil {
		return "", fmt.Errorf("can't equip %s: %w", item.Name, ErrNotAnItem)
	}
	if item.Equipment == nil {
		return "", fmt.Errorf("can't equip %s: %w", item.Name, ErrNotEquipment)
	}
	if item.Equipment.Equipped {
		return "", nil
	}

	msg := ""
	if old := EquippedInSlot(g, item.Equipment.Slot); old >= 0 {
		m, err := TryDequip(g, old)
		if err != nil {
			return "", err
		}
		msg = m + " "
	}
	item.Equipment.Equipped = true
	return msg + fmt.Sprintf("Equipped %s on %s.", item.Name, item.Equipment.Slot), nil
}

// TryDequip снимает предмет.
func TryDequip(g *domain.Game, invIdx int) (string, error) {
	item, err := inventoryItem(g, invIdx)
	if err != nil {
		return "", err
	}
	if item.Item == nil {
		return "", fmt.Errorf("can't dequip %s: %w", item.Name, ErrNotAnItem)
	}
	if item.Equipment == nil {
		return "", fmt.Errorf("can't dequip %s: %w", item.Name, ErrNotEquipment)
	}
	if !item.Equipment.Equipped {
		return "", nil
	}
	item.Equipment.Equipped = false
	return fmt.Sprintf("Dequipped %s from %s.", item.Name, item.Equipment.Slot), nil
}

// ToggleEquipment - эффект "использования" экипировки: надеть или снять.
func ToggleEquipment(g *domain.Game, invIdx int) UseResult {
	item, err := inventoryItem(g, invIdx)
	if err != nil {
		report(g, "", err)
		return Cancelled
	}

	var msg string
	if item.Equipment != nil && item.Equipment.Equipped {
		msg, err = TryDequip(g, invIdx)
	} else {
		msg, err = TryEquip(g, invIdx)
	}
	report(g, msg, err)
	return UsedAndKept
}

// report превращает результат системы в запись журнала.
// Ошибки правил не роняют игру, а попадают в журнал красным.
func report(g *domain.Game, msg string, err error) {
	if err != nil {
		g.Log(capitalize(err.Error())+".", types.ColorRed)
		return
	}
	if msg != "" {
		g.Log(msg, types.ColorLightGreen)
	}
}
