package enums

import "strings"

// ActionType - команда игрока, прочитанная из ввода.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionPickup
	ActionUse
	ActionDrop
	ActionDescend
	ActionCharacter
	ActionFullscreen
	ActionExit
)

var actionToString = map[ActionType]string{
	ActionMove:       "MOVE",
	ActionWait:       "WAIT",
	ActionPickup:     "PICKUP",
	ActionUse:        "USE",
	ActionDrop:       "DROP",
	ActionDescend:    "DESCEND",
	ActionCharacter:  "CHARACTER",
	ActionFullscreen: "FULLSCREEN",
	ActionExit:       "EXIT",
}

var actionFromString = map[string]ActionType{
	"MOVE":       ActionMove,
	"WAIT":       ActionWait,
	"PICKUP":     ActionPickup,
	"USE":        ActionUse,
	"DROP":       ActionDrop,
	"DESCEND":    ActionDescend,
	"CHARACTER":  ActionCharacter,
	"FULLSCREEN": ActionFullscreen,
	"EXIT":       ActionExit,
}

func (a ActionType) String() string {
	if val, ok := actionToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAction конвертирует строку в ActionType (ввод реплеев и отладки).
func ParseAction(s string) ActionType {
	if val, ok := actionFromString[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}
