package engine

import (
	"sort"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
	"randroom/pkg/api"
	"randroom/pkg/dungeon"
)

// FrameLogLines - сколько последних сообщений журнала уходит в кадр.
const FrameLogLines = 6

// Глифы тайлов.
const (
	wallSymbol  = "#"
	floorSymbol = "."
)

// BuildFrame создает "снимок" мира, видимого игроку.
// Кадр не ссылается на состояние игры и безопасен для передачи в другие горутины.
func BuildFrame(g *domain.Game, entities domain.Entities, sight systems.Sight, tick int) api.Frame {
	m := g.Map
	frame := api.Frame{
		Type: "FRAME",
		Tick: tick,
		Grid: api.GridMeta{Width: m.Width, Height: m.Height},
	}

	// 1. Карта: только видимое и исследованное
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.Tiles[x][y]
			visible := sight.IsVisible(x, y)
			if !visible && !tile.Explored {
				continue
			}
			frame.Map = append(frame.Map, toTileView(x, y, tile, visible))
		}
	}

	// 2. Сущности: видимые, плюс always_visible на исследованных клетках
	for i, e := range entities {
		visible := sight.IsVisible(e.Pos.X, e.Pos.Y)
		if !visible && !(e.AlwaysVisible && m.IsExplored(e.Pos.X, e.Pos.Y)) {
			continue
		}
		frame.Entities = append(frame.Entities, toEntityView(g, i, e))
	}
	// Неблокирующие (трупы, предметы) рисуются первыми
	sort.SliceStable(frame.Entities, func(i, j int) bool {
		return !entities[frame.Entities[i].Index].Blocks && entities[frame.Entities[j].Index].Blocks
	})

	// 3. Журнал
	for _, msg := range g.Messages.Tail(FrameLogLines) {
		frame.Logs = append(frame.Logs, api.LogEntry{Text: msg.Text, Color: msg.Color.Hex()})
	}

	// 4. Панель игрока
	player := entities.Player()
	frame.HUD = api.HUDView{
		DungeonLevel: g.DungeonLevel,
		Level:        player.Level,
		NextLevelXP:  systems.LevelUpXP(player.Level),
	}
	if f := player.Fighter; f != nil {
		frame.HUD.HP = f.HP
		frame.HUD.MaxHP = systems.MaxHP(g, player)
		frame.HUD.Power = systems.Power(g, player)
		frame.HUD.Defense = systems.Defense(g, player)
		frame.HUD.XP = f.XP
	}

	// 5. Инвентарь
	for i, item := range g.Inventory {
		view := api.ItemView{
			Index:  i,
			Name:   handlers.InventoryLabel(item),
			Symbol: string(rune(item.Glyph.Char())),
			Color:  item.Glyph.Color().Hex(),
		}
		if eq := item.Equipment; eq != nil {
			view.Slot = eq.Slot.String()
			view.Equipped = eq.Equipped
		}
		frame.Inventory = append(frame.Inventory, view)
	}

	return frame
}

func toTileView(x, y int, tile domain.Tile, visible bool) api.TileView {
	view := api.TileView{
		X: x, Y: y,
		IsWall:     tile.BlockSight,
		IsVisible:  visible,
		IsExplored: tile.Explored || visible,
		Symbol:     floorSymbol,
	}

	var color types.Color
	switch {
	case tile.BlockSight && visible:
		color = types.ColorLightWall
	case tile.BlockSight:
		color = types.ColorDarkWall
	case visible:
		color = types.ColorLightGround
	default:
		color = types.ColorDarkGround
	}
	if tile.BlockSight {
		view.Symbol = wallSymbol
	}
	view.Color = color.Hex()
	return view
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(g *domain.Game, idx int, e *domain.Entity) api.EntityView {
	view := api.EntityView{
		Index: idx,
		Type:  entityType(idx, e),
		Name:  e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y
	view.Render.Symbol = string(rune(e.Glyph.Char()))
	view.Render.Color = e.Glyph.Color().Hex()

	if e.Fighter != nil {
		view.Stats = &api.StatsView{
			HP:      e.Fighter.HP,
			MaxHP:   systems.MaxHP(g, e),
			Power:   systems.Power(g, e),
			Defense: systems.Defense(g, e),
			IsDead:  !e.Alive,
		}
	}
	return view
}

func entityType(idx int, e *domain.Entity) string {
	switch {
	case idx == domain.PlayerIndex:
		return api.EntityPlayer
	case e.IsMonster():
		return api.EntityEnemy
	case dungeon.IsStairs(e):
		return api.EntityStairs
	case e.Item != nil:
		return api.EntityItem
	default:
		return api.EntityCorpse
	}
}
