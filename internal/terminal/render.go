package terminal

import (
	"fmt"
	"strings"

	"randroom/internal/core/types"
	"randroom/pkg/api"

	"github.com/gdamore/tcell/v2"
)

// Разметка панели под картой.
const (
	PanelHeight = 7
	BarWidth    = 20
	MsgX        = BarWidth + 2
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	colorBarFull = hexColor(types.ColorLightRed.Hex())
	colorBarBack = hexColor(types.ColorDarkRed.Hex())
)

func hexColor(hex string) tcell.Color {
	return tcell.GetColor(strings.ToLower(hex))
}

// drawFrame рисует карту, сущности и панель.
func (t *Terminal) drawFrame(frame api.Frame) {
	s := t.screen
	s.Clear()

	// 1. Тайлы: цвет фона, как в консоли libtcod
	backgrounds := make(map[[2]int]tcell.Color, len(frame.Map))
	for _, tile := range frame.Map {
		bg := hexColor(tile.Color)
		backgrounds[[2]int{tile.X, tile.Y}] = bg
		s.SetContent(tile.X, tile.Y, ' ', nil, styleDefault.Background(bg))
	}

	// 2. Сущности поверх тайлов, кадр уже отсортирован
	for _, e := range frame.Entities {
		style := styleDefault.Foreground(hexColor(e.Render.Color))
		if bg, ok := backgrounds[[2]int{e.Pos.X, e.Pos.Y}]; ok {
			style = style.Background(bg)
		}
		s.SetContent(e.Pos.X, e.Pos.Y, firstRune(e.Render.Symbol), nil, style)
	}

	// 3. Панель
	panelY := frame.Grid.Height
	t.drawPanel(frame, panelY)

	s.Show()
}

func (t *Terminal) drawPanel(frame api.Frame, y int) {
	hud := frame.HUD

	// Имена под курсором
	t.drawText(1, y, styleDefault.Foreground(tcell.ColorSilver), t.namesUnderMouse(frame))

	// Полоса здоровья
	t.drawBar(1, y+1, BarWidth, "HP", hud.HP, hud.MaxHP)
	t.drawText(1, y+3, styleDefault, fmt.Sprintf("Dungeon level: %d", hud.DungeonLevel))
	t.drawText(1, y+4, styleDefault, fmt.Sprintf("Level: %d  XP: %d/%d", hud.Level, hud.XP, hud.NextLevelXP))

	// Журнал
	width, _ := t.screen.Size()
	msgWidth := width - MsgX
	for i, entry := range frame.Logs {
		t.drawText(MsgX, y+1+i, styleDefault.Foreground(hexColor(entry.Color)), truncate(entry.Text, msgWidth))
	}
}

func (t *Terminal) drawBar(x, y, width int, name string, value, maximum int) {
	filled := 0
	if maximum > 0 {
		filled = value * width / maximum
	}
	for i := range width {
		bg := colorBarBack
		if i < filled {
			bg = colorBarFull
		}
		t.screen.SetContent(x+i, y, ' ', nil, styleDefault.Background(bg))
	}

	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	start := x + (width-len(label))/2
	for i, r := range label {
		bg := colorBarBack
		if start+i-x < filled {
			bg = colorBarFull
		}
		t.screen.SetContent(start+i, y, r, nil, styleDefault.Background(bg))
	}
}

// namesUnderMouse - имена видимых сущностей под курсором через запятую.
func (t *Terminal) namesUnderMouse(frame api.Frame) string {
	if !frame.Visible(t.mouseX, t.mouseY) {
		return ""
	}
	var names []string
	for _, e := range frame.Entities {
		if e.Pos.X == t.mouseX && e.Pos.Y == t.mouseY {
			names = append(names, e.Name)
		}
	}
	return strings.Join(names, ", ")
}

func (t *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

// wrap разбивает текст по словам на строки не длиннее width.
func wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
