package enums

import "strings"

// DeathPolicy выбирает обработчик смерти бойца.
type DeathPolicy uint8

const (
	DeathUnknown DeathPolicy = iota
	DeathPlayer
	DeathMonster
)

func (d DeathPolicy) String() string {
	switch d {
	case DeathPlayer:
		return "PLAYER"
	case DeathMonster:
		return "MONSTER"
	default:
		return "UNKNOWN"
	}
}

// AIKind - вариант поведения монстра.
type AIKind uint8

const (
	AIUnknown AIKind = iota
	AIBasic
	AIConfused
)

var aiKindToString = map[AIKind]string{
	AIBasic:    "BASIC",
	AIConfused: "CONFUSED",
}

var aiKindFromString = map[string]AIKind{
	"BASIC":    AIBasic,
	"CONFUSED": AIConfused,
}

func (k AIKind) String() string {
	if val, ok := aiKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseAIKind(s string) AIKind {
	if val, ok := aiKindFromString[strings.ToUpper(s)]; ok {
		return val
	}
	return AIUnknown
}
