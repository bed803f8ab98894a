package dungeon

import (
	"math/rand/v2"

	"randroom/internal/domain"
)

// StairsChar - глиф лестницы вниз.
const StairsChar = '>'

// Params - размеры карты и комнат.
type Params struct {
	Width       int
	Height      int
	RoomMinSize int
	RoomMaxSize int
	MaxRooms    int
}

// DefaultParams возвращает классические размеры.
func DefaultParams() Params {
	return Params{
		Width:       domain.MapWidth,
		Height:      domain.MapHeight,
		RoomMinSize: domain.RoomMinSize,
		RoomMaxSize: domain.RoomMaxSize,
		MaxRooms:    domain.MaxRooms,
	}
}

// Generate создает уровень depth. Коллекция обрезается до игрока,
// игрок переносится в центр первой комнаты.
func Generate(entities domain.Entities, depth int, rng *rand.Rand, p Params) (*domain.Map, domain.Entities) {
	return NewLevel(depth, rng).
		WithParams(p).
		WithPlayer(entities).
		WithRooms().
		Build()
}

// IsStairs узнает лестницу по глифу и имени.
func IsStairs(e *domain.Entity) bool {
	return e.Glyph.Char() == StairsChar && e.Name == "stairs" && e.Fighter == nil && e.Item == nil
}
