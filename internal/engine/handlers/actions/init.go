package actions

import (
	"randroom/internal/core/types/enums"
	"randroom/internal/engine/handlers"
)

// Заголовки меню инвентаря.
const (
	UseMenuHeader  = "Press the key next to an item to use it, or any other to cancel.\n"
	DropMenuHeader = "Press the key next to an item to drop it, or any other to cancel.\n"
)

// Registry возвращает таблицу хендлеров всех команд игрока.
func Registry() map[enums.ActionType]handlers.HandlerFunc {
	return map[enums.ActionType]handlers.HandlerFunc{
		// Перемещение и бой
		enums.ActionMove: handlers.WithPayload(HandleMove),
		enums.ActionWait: handlers.WithEmptyPayload(HandleWait),

		// Инвентарь
		enums.ActionPickup: handlers.WithEmptyPayload(HandlePickup),
		enums.ActionUse:    handlers.WithInventoryChoice(UseMenuHeader, HandleUse),
		enums.ActionDrop:   handlers.WithInventoryChoice(DropMenuHeader, HandleDrop),

		// Уровни
		enums.ActionDescend: handlers.WithEmptyPayload(HandleDescend),

		// Без траты хода
		enums.ActionCharacter:  handlers.WithEmptyPayload(HandleCharacter),
		enums.ActionFullscreen: handlers.WithEmptyPayload(HandleFullscreen),
		enums.ActionExit:       handlers.WithEmptyPayload(HandleExit),
	}
}
