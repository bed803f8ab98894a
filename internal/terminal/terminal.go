// Package terminal - интерфейс игрока в консоли поверх tcell.
package terminal

import (
	"context"
	"fmt"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/engine"
	"randroom/pkg/api"
	"randroom/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Terminal реализует engine.UI. Все методы вызываются из цикла сессии.
// Отмена ctx будит ожидание ввода: дальше ReadCommand отдает EXIT,
// а меню и прицеливание считаются отмененными.
type Terminal struct {
	screen tcell.Screen

	last           api.Frame
	mouseX, mouseY int
	fullscreen     bool
	interrupted    bool

	log *logrus.Entry
}

var _ engine.UI = (*Terminal)(nil)

// Open создает настоящий экран терминала.
func Open(ctx context.Context) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(ctx, screen), nil
}

// New оборачивает уже инициализированный экран.
func New(ctx context.Context, screen tcell.Screen) *Terminal {
	screen.SetStyle(styleDefault)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		mouseX: -1,
		mouseY: -1,
		log:    logger.Log.WithField("component", "terminal"),
	}

	go func() {
		<-ctx.Done()
		if err := screen.PostEvent(tcell.NewEventInterrupt(ctx.Err())); err != nil {
			t.log.WithError(err).Debug("Failed to post interrupt")
		}
	}()
	return t
}

// Close возвращает терминал в исходное состояние.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// nextEvent ждет событие. После прерывания всегда nil.
func (t *Terminal) nextEvent() tcell.Event {
	if t.interrupted {
		return nil
	}
	ev := t.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		t.interrupted = true
	case *tcell.EventInterrupt:
		t.interrupted = true
		return nil
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventMouse:
		t.mouseX, t.mouseY = ev.Position()
	}
	return ev
}

func (t *Terminal) Render(frame api.Frame) {
	t.last = frame
	t.drawFrame(frame)
}

func (t *Terminal) ReadCommand() domain.Command {
	for {
		switch ev := t.nextEvent().(type) {
		case nil:
			return domain.NewCommand(enums.ActionExit, nil)
		case *tcell.EventKey:
			if cmd, ok := KeyCommand(ev); ok {
				t.log.WithField("action", cmd.Action).Debug("Key command")
				return cmd
			}
		case *tcell.EventMouse, *tcell.EventResize:
			// Подсказка с именами под курсором
			t.drawFrame(t.last)
		}
	}
}

func (t *Terminal) PollTarget(frame api.Frame) engine.TargetEvent {
	t.Render(frame)

	for {
		switch ev := t.nextEvent().(type) {
		case nil:
			return engine.TargetEvent{Kind: engine.TargetCancel}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return engine.TargetEvent{Kind: engine.TargetCancel}
			}
			return engine.TargetEvent{Kind: engine.TargetNone}
		case *tcell.EventMouse:
			x, y := ev.Position()
			switch {
			case ev.Buttons()&tcell.ButtonPrimary != 0:
				return engine.TargetEvent{Kind: engine.TargetClick, X: x, Y: y}
			case ev.Buttons()&tcell.ButtonSecondary != 0:
				return engine.TargetEvent{Kind: engine.TargetCancel}
			}
			return engine.TargetEvent{Kind: engine.TargetNone}
		case *tcell.EventResize:
			t.drawFrame(frame)
		}
	}
}

func (t *Terminal) ToggleFullscreen() {
	// У терминала нет окна: перерисовываем экран целиком
	t.fullscreen = !t.fullscreen
	t.screen.Sync()
	t.log.WithField("fullscreen", t.fullscreen).Debug("Fullscreen toggled")
}
