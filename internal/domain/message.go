package domain

import "randroom/internal/core/types"

// Message - запись в журнале сообщений.
type Message struct {
	Text  string      `json:"text"`
	Color types.Color `json:"color"`
}

// MessageLog - упорядоченный журнал. Рендер показывает хвост.
type MessageLog struct {
	Entries []Message `json:"entries"`
}

// Add дописывает сообщение в конец журнала.
func (l *MessageLog) Add(text string, color types.Color) {
	l.Entries = append(l.Entries, Message{Text: text, Color: color})
}

// Tail возвращает последние n сообщений.
func (l *MessageLog) Tail(n int) []Message {
	if n >= len(l.Entries) {
		return l.Entries
	}
	return l.Entries[len(l.Entries)-n:]
}

// Game - состояние забега помимо коллекции сущностей.
type Game struct {
	Map          *Map        `json:"map"`
	Messages     *MessageLog `json:"messages"`
	Inventory    []*Entity   `json:"inventory"`
	DungeonLevel int         `json:"dungeonLevel"`
}

// NewGame создает пустое состояние первого уровня.
func NewGame(m *Map) *Game {
	return &Game{
		Map:          m,
		Messages:     &MessageLog{},
		DungeonLevel: 1,
	}
}

// Log - короткая запись в журнал.
func (g *Game) Log(text string, color types.Color) {
	g.Messages.Add(text, color)
}
