package terminal

import (
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/api"

	"github.com/gdamore/tcell/v2"
)

// Направления: стрелки, Home/End/PgUp/PgDn как диагонали и vi-клавиши.
var keyDirections = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

var runeDirections = map[rune][2]int{
	'k': {0, -1}, '8': {0, -1},
	'j': {0, 1}, '2': {0, 1},
	'h': {-1, 0}, '4': {-1, 0},
	'l': {1, 0}, '6': {1, 0},
	'y': {-1, -1}, '7': {-1, -1},
	'u': {1, -1}, '9': {1, -1},
	'b': {-1, 1}, '1': {-1, 1},
	'n': {1, 1}, '3': {1, 1},
}

var runeActions = map[rune]enums.ActionType{
	'.': enums.ActionWait,
	'5': enums.ActionWait,
	'g': enums.ActionPickup,
	',': enums.ActionPickup,
	'i': enums.ActionUse,
	'd': enums.ActionDrop,
	'>': enums.ActionDescend,
	'<': enums.ActionDescend,
	'c': enums.ActionCharacter,
}

// KeyCommand переводит нажатие в команду игрока.
// ok=false - клавиша ничего не значит, ввод продолжается.
func KeyCommand(ev *tcell.EventKey) (domain.Command, bool) {
	switch {
	case ev.Key() == tcell.KeyEnter && ev.Modifiers()&tcell.ModAlt != 0:
		return domain.NewCommand(enums.ActionFullscreen, nil), true
	case ev.Key() == tcell.KeyEscape:
		return domain.NewCommand(enums.ActionExit, nil), true
	}

	if d, ok := keyDirections[ev.Key()]; ok {
		return moveCommand(d), true
	}
	if ev.Key() != tcell.KeyRune {
		return domain.Command{}, false
	}
	if d, ok := runeDirections[ev.Rune()]; ok {
		return moveCommand(d), true
	}
	if action, ok := runeActions[ev.Rune()]; ok {
		return domain.NewCommand(action, nil), true
	}
	return domain.Command{}, false
}

func moveCommand(d [2]int) domain.Command {
	return domain.NewCommand(enums.ActionMove, api.DirectionPayload{Dx: d[0], Dy: d[1]})
}

// menuIndex - буква пункта меню: 'a' это 0.
func menuIndex(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}
