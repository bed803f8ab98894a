package handlers

import (
	"encoding/json"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/internal/systems"
)

// TurnResult - тратит ли команда ход игрока.
type TurnResult uint8

const (
	DidntTakeTurn TurnResult = iota
	TookTurn
	Exit
)

func (t TurnResult) String() string {
	switch t {
	case TookTurn:
		return "TOOK_TURN"
	case Exit:
		return "EXIT"
	default:
		return "DIDNT_TAKE_TURN"
	}
}

// Frontend - то, что хендлерам нужно от интерфейса игрока.
type Frontend interface {
	// Menu показывает список вариантов. ok=false - выбор отменен.
	Menu(header string, options []string) (int, bool)
	MessageBox(text string)
	ToggleFullscreen()
}

// LevelSwitcher генерирует следующий уровень подземелья.
// Session неявно реализует этот интерфейс.
type LevelSwitcher interface {
	NextLevel()
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Game     *domain.Game
	Entities *domain.Entities // Подбор и выброс меняют сам слайс
	Sight    systems.Sight
	Targeter systems.Targeter
	UI       Frontend
	Levels   LevelSwitcher
}

// Player - сокращение для (*ctx.Entities).Player().
func (c Context) Player() *domain.Entity {
	return c.Entities.Player()
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg   string      // Текст для журнала
	Color types.Color // Цвет записи
	Turn  TurnResult
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа без траты хода
func EmptyResult() Result {
	return Result{}
}

// Took - ход потрачен, опционально с сообщением.
func Took(msg string, color types.Color) Result {
	return Result{Msg: msg, Color: color, Turn: TookTurn}
}

// InventoryLabel - строка предмета в меню инвентаря.
func InventoryLabel(item *domain.Entity) string {
	if eq := item.Equipment; eq != nil && eq.Equipped {
		return item.Name + " (on " + eq.Slot.String() + ")"
	}
	return item.Name
}
