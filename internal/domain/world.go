package domain

// Tile - одна клетка карты.
// BlockSight без Blocked рисуется как стена, но проходима.
type Tile struct {
	Blocked    bool `json:"blocked"`
	BlockSight bool `json:"blockSight"`
	Explored   bool `json:"explored"`
}

// WallTile возвращает непроходимую и непрозрачную клетку.
func WallTile() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// FloorTile возвращает пустую клетку пола.
func FloorTile() Tile {
	return Tile{}
}

// Map - сетка тайлов, индексируется Tiles[x][y].
type Map struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
}

// NewMap создает карту, целиком залитую стеной.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = WallTile()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsBlocked проверяет только рельеф. За пределами карты всегда стена.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[x][y].Blocked
}

// IsOpaque сообщает, загораживает ли клетка обзор.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[x][y].BlockSight
}

// SetFloor прорубает клетку.
func (m *Map) SetFloor(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[x][y] = FloorTile()
	}
}

// MarkExplored - единственный путь записи Explored, флаг только взводится.
func (m *Map) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[x][y].Explored = true
	}
}

func (m *Map) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[x][y].Explored
}
