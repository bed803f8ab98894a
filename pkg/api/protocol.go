package api

// --- ДВИЖОК -> ФРОНТЕНД ---

// Frame это корневой объект, который движок отдает рендеру (терминалу
// или наблюдателю по websocket). Снимок мира, видимого игроку.
// Строится заново перед каждым чтением ввода и дальше не меняется.
type Frame struct {
	// Type тип сообщения. Всегда "FRAME".
	Type string `json:"type"`

	// Tick номер хода с начала сессии.
	Tick int `json:"tick"`

	// Grid метаданные о размере всей карты.
	Grid GridMeta `json:"grid"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities видимые сущности (и always_visible на исследованных тайлах).
	// Порядок: сначала не блокирующие, чтобы живые рисовались поверх.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs хвост журнала сообщений.
	Logs []LogEntry `json:"logs,omitempty"`

	// HUD панель игрока.
	HUD HUDView `json:"hud"`

	// Inventory содержимое инвентаря по порядку слотов.
	Inventory []ItemView `json:"inventory,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла.
	// Color уже учитывает видимость (светлый/темный вариант).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден. Используется для "тумана войны".
	IsExplored bool `json:"isExplored"`
}

// Типы сущностей для EntityView.Type.
const (
	EntityPlayer = "PLAYER"
	EntityEnemy  = "ENEMY"
	EntityItem   = "ITEM"
	EntityCorpse = "CORPSE"
	EntityStairs = "STAIRS"
)

// EntityView это DTO для игровой сущности.
type EntityView struct {
	// Index позиция в коллекции сущностей (0 - игрок).
	Index int    `json:"index"`
	Type  string `json:"type"`
	Name  string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats есть только у бойцов.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик бойца (с учетом экипировки).
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power"`
	Defense int  `json:"defense"`
	IsDead  bool `json:"isDead"`
}

// HUDView - панель под картой.
type HUDView struct {
	DungeonLevel int `json:"dungeonLevel"`
	Level        int `json:"level"`
	HP           int `json:"hp"`
	MaxHP        int `json:"maxHp"`
	Power        int `json:"power"`
	Defense      int `json:"defense"`
	XP           int `json:"xp"`
	NextLevelXP  int `json:"nextLevelXp"`
}

// LogEntry представляет одну запись в игровом журнале.
type LogEntry struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// ItemView представляет предмет инвентаря.
type ItemView struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Color    string `json:"color"`
	Slot     string `json:"slot,omitempty"`
	Equipped bool   `json:"equipped,omitempty"`
}

// Label - строка для меню инвентаря.
func (i ItemView) Label() string {
	if i.Equipped {
		return i.Name + " (on " + i.Slot + ")"
	}
	return i.Name
}

// Visible сообщает, видима ли клетка в этом кадре.
func (f *Frame) Visible(x, y int) bool {
	for _, t := range f.Map {
		if t.X == x && t.Y == y {
			return t.IsVisible
		}
	}
	return false
}

// --- ФРОНТЕНД -> ДВИЖОК ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// InventoryPayload используется для USE и DROP.
type InventoryPayload struct {
	Index int `json:"index"`
}
