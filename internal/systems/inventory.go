package systems

import (
	"fmt"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ItemAt возвращает индекс предмета на клетке или -1.
func ItemAt(entities domain.Entities, pos domain.Position) int {
	return entities.IndexAt(pos.X, pos.Y, func(e *domain.Entity) bool {
		return e.Item != nil
	})
}

// --- PICKUP ---

// TryPickup переносит предмет idx с карты в инвентарь.
// Экипировка надевается сама, если ее слот свободен.
func TryPickup(g *domain.Game, entities domain.Entities, idx int) (domain.Entities, string, error) {
	item := entities[idx]
	if item.Item == nil {
		return entities, "", fmt.Errorf("%s: %w", item.Name, ErrNotAnItem)
	}
	if len(g.Inventory) >= domain.MaxInventorySize {
		return entities, "", fmt.Errorf("your inventory is full, cannot pick up %s", item.Name)
	}

	entities, _ = entities.Remove(idx)
	g.Inventory = append(g.Inventory, item)
	msg := fmt.Sprintf("You picked up a %s!", item.Name)

	if item.Equipment != nil && EquippedInSlot(g, item.Equipment.Slot) < 0 {
		if m, err := TryEquip(g, len(g.Inventory)-1); err == nil && m != "" {
			msg += " " + m
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"item":      item.Name,
		"slots":     len(g.Inventory),
	}).Debug("Item picked up.")

	return entities, msg, nil
}

// --- DROP ---

// TryDrop кладет предмет из инвентаря под ноги игроку.
func TryDrop(g *domain.Game, entities domain.Entities, invIdx int) (domain.Entities, string, error) {
	item, err := inventoryItem(g, invIdx)
	if err != nil {
		return entities, "", err
	}

	msg := ""
	if item.Equipment != nil && item.Equipment.Equipped {
		m, err := TryDequip(g, invIdx)
		if err != nil {
			return entities, "", err
		}
		msg = m + " "
	}

	g.Inventory = append(g.Inventory[:invIdx], g.Inventory[invIdx+1:]...)
	item.Pos = entities.Player().Pos
	entities = append(entities, item)

	return entities, msg + fmt.Sprintf("You dropped a %s.", item.Name), nil
}

// PickupMessageColor и DropMessageColor - цвета записей журнала.
const (
	PickupMessageColor = types.ColorGreen
	DropMessageColor   = types.ColorYellow
)
