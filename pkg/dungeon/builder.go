package dungeon

import (
	"fmt"
	"math/rand/v2"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/logger"
	"randroom/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects проверяет пересечение с учетом границ (касание = пересечение).
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

func createRoom(m *domain.Map, room Rect) {
	for x := room.X + 1; x < room.X+room.W; x++ {
		for y := room.Y + 1; y < room.Y+room.H; y++ {
			m.SetFloor(x, y)
		}
	}
}

func createHCorridor(m *domain.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetFloor(x, y)
	}
}

func createVCorridor(m *domain.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetFloor(x, y)
	}
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	level    int
	params   Params
	rooms    []Rect
	gameMap  *domain.Map
	entities domain.Entities
	rng      *rand.Rand
	log      *logrus.Entry
}

// NewLevel создает новый builder для уровня
func NewLevel(level int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		level:  level,
		params: DefaultParams(),
		rng:    rng,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"level":     level,
		}),
	}
}

// WithParams заменяет параметры генерации целиком.
func (b *LevelBuilder) WithParams(p Params) *LevelBuilder {
	b.params = p
	return b
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.params.Width = width
	b.params.Height = height
	return b
}

// WithPlayer оставляет в коллекции только игрока (индекс 0).
// Всё остальное принадлежало прошлому уровню.
func (b *LevelBuilder) WithPlayer(entities domain.Entities) *LevelBuilder {
	if len(entities) == 0 {
		panic("dungeon: entity collection is empty, index 0 must be the player")
	}
	p := entities[domain.PlayerIndex]
	if p.Fighter == nil || p.Fighter.OnDeath != enums.DeathPlayer {
		panic(fmt.Sprintf("dungeon: entity at index 0 is %q, not the player", p.Name))
	}
	b.entities = domain.Entities{p}
	return b
}

// WithRooms генерирует комнаты, коридоры и населяет комнаты.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	if b.entities == nil {
		panic("dungeon: WithPlayer must be called before WithRooms")
	}
	p := b.params
	b.gameMap = domain.NewMap(p.Width, p.Height)
	b.rooms = make([]Rect, 0, p.MaxRooms)

	for i := 0; i < p.MaxRooms; i++ {
		w := utils.RandRange(b.rng, p.RoomMinSize, p.RoomMaxSize)
		h := utils.RandRange(b.rng, p.RoomMinSize, p.RoomMaxSize)
		x := b.rng.IntN(p.Width - w)
		y := b.rng.IntN(p.Height - h)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(b.gameMap, newRoom)
		currX, currY := newRoom.Center()

		if len(b.rooms) == 0 {
			// Игрок встает до заселения, чтобы монстр не появился на его клетке
			b.entities.Player().SetPos(currX, currY)
		} else {
			// Соединяем с предыдущей комнатой
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			if utils.CoinFlip(b.rng) {
				createHCorridor(b.gameMap, prevX, currX, prevY)
				createVCorridor(b.gameMap, prevY, currY, currX)
			} else {
				createVCorridor(b.gameMap, prevY, currY, prevX)
				createHCorridor(b.gameMap, prevX, currX, currY)
			}
		}

		b.populate(newRoom)
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// populate заселяет комнату монстрами и предметами по таблицам глубины.
func (b *LevelBuilder) populate(room Rect) {
	numMonsters := b.rng.IntN(FromDungeonLevel(MaxMonstersTable, b.level) + 1)
	monsters := MonsterChances(b.level)
	for i := 0; i < numMonsters; i++ {
		x, y := b.randomInterior(room)
		if domain.IsBlocked(b.gameMap, b.entities, x, y) {
			continue
		}
		tmpl, ok := utils.WeightedChoice(b.rng, monsters)
		if !ok {
			continue
		}
		b.entities = append(b.entities, tmpl.SpawnEntity(x, y))
	}

	numItems := b.rng.IntN(FromDungeonLevel(MaxItemsTable, b.level) + 1)
	items := ItemChances(b.level)
	for i := 0; i < numItems; i++ {
		x, y := b.randomInterior(room)
		if domain.IsBlocked(b.gameMap, b.entities, x, y) {
			continue
		}
		tmpl, ok := utils.WeightedChoice(b.rng, items)
		if !ok {
			continue
		}
		b.entities = append(b.entities, tmpl.SpawnEntity(x, y))
	}
}

func (b *LevelBuilder) randomInterior(room Rect) (int, int) {
	return utils.RandRange(b.rng, room.X+1, room.X+room.W-1),
		utils.RandRange(b.rng, room.Y+1, room.Y+room.H-1)
}

// Rooms возвращает принятые комнаты в порядке создания.
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// Build ставит лестницу в последнюю комнату и отдает готовый уровень.
func (b *LevelBuilder) Build() (*domain.Map, domain.Entities) {
	if len(b.rooms) == 0 {
		panic("dungeon: no room was carved")
	}

	lx, ly := b.rooms[len(b.rooms)-1].Center()
	stairs := domain.NewEntity(lx, ly, types.MakeGlyph(types.ColorWhite, StairsChar), "stairs", false)
	stairs.AlwaysVisible = true
	b.entities = append(b.entities, stairs)

	b.log.WithFields(logrus.Fields{
		"rooms":    len(b.rooms),
		"entities": len(b.entities),
	}).Debug("Level generated.")

	return b.gameMap, b.entities
}
