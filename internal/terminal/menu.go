package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Ширина окон меню.
const (
	MaxMenuOptions = 26
	MenuMinWidth   = 24
	MenuMaxWidth   = 50
)

var styleMenu = styleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Menu рисует окно с пунктами (a), (b), ... поверх последнего кадра.
// Буква выбирает пункт, любая другая клавиша - отмена.
func (t *Terminal) Menu(header string, options []string) (int, bool) {
	if len(options) > MaxMenuOptions {
		panic(fmt.Sprintf("terminal: menu with %d options, at most %d fit", len(options), MaxMenuOptions))
	}

	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, opt))
	}
	t.drawWindow(header, lines)

	for {
		switch ev := t.nextEvent().(type) {
		case nil:
			return 0, false
		case *tcell.EventKey:
			// Alt+Enter в меню тоже переключает режим
			if ev.Key() == tcell.KeyEnter && ev.Modifiers()&tcell.ModAlt != 0 {
				t.ToggleFullscreen()
				t.drawWindow(header, lines)
				continue
			}
			idx, ok := menuIndex(ev)
			if !ok || idx >= len(options) {
				return 0, false
			}
			return idx, true
		case *tcell.EventResize:
			t.drawWindow(header, lines)
		}
	}
}

// MessageBox - окно без пунктов, закрывается любой клавишей.
func (t *Terminal) MessageBox(text string) {
	t.drawWindow(text, nil)
	for {
		switch t.nextEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.drawWindow(text, nil)
		}
	}
}

// drawWindow рисует последний кадр, а поверх него окно по центру экрана.
func (t *Terminal) drawWindow(header string, lines []string) {
	if t.last.Grid.Width > 0 {
		t.drawFrame(t.last)
	} else {
		t.screen.Clear()
	}

	width := MenuMinWidth
	for _, l := range lines {
		width = max(width, len(l))
	}
	width = min(width, MenuMaxWidth)

	var headerLines []string
	if header != "" {
		headerLines = wrap(header, width)
	}
	body := append(headerLines, lines...)

	sw, sh := t.screen.Size()
	x0 := max(0, (sw-width)/2)
	y0 := max(0, (sh-len(body))/2)

	for y := range body {
		for x := range width {
			t.screen.SetContent(x0+x, y0+y, ' ', nil, styleMenu)
		}
		t.drawText(x0, y0+y, styleMenu, truncate(body[y], width))
	}
	t.screen.Show()
}
