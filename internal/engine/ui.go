package engine

import (
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/engine/handlers"
	"randroom/pkg/api"
)

// TargetKind - что произошло при выборе цели.
type TargetKind uint8

const (
	TargetNone   TargetKind = iota // ничего (движение мыши), рисуем заново
	TargetClick                    // подтвержденный клик по клетке
	TargetCancel                   // отмена (правый клик, Esc)
)

// TargetEvent - одно событие режима прицеливания.
type TargetEvent struct {
	Kind TargetKind
	X, Y int
}

// UI - коллаборатор ввода и вывода: терминал, скрипт теста или реплей.
// Все методы вызываются из цикла сессии, в одной горутине.
type UI interface {
	handlers.Frontend

	// Render рисует кадр.
	Render(frame api.Frame)
	// ReadCommand блокируется до следующей команды игрока.
	ReadCommand() domain.Command
	// PollTarget ждет одно событие прицеливания поверх кадра.
	PollTarget(frame api.Frame) TargetEvent
}

// FrameSink получает копии кадров (наблюдатель по websocket).
type FrameSink interface {
	Publish(frame api.Frame)
}

// MenuAnswer - заранее заданный ответ меню.
type MenuAnswer struct {
	Choice int
	OK     bool
}

// ScriptedUI отдает заранее заданный ввод. Когда ввод кончился:
// ReadCommand - EXIT, PollTarget - отмена, Menu - первый пункт.
type ScriptedUI struct {
	Commands []domain.Command
	Targets  []TargetEvent
	Menus    []MenuAnswer

	// Что увидел бы игрок
	Frames      int
	LastFrame   api.Frame
	Boxes       []string
	MenuHeaders []string
	Fullscreen  bool
}

func (s *ScriptedUI) Render(frame api.Frame) {
	s.Frames++
	s.LastFrame = frame
}

func (s *ScriptedUI) ReadCommand() domain.Command {
	if len(s.Commands) == 0 {
		return domain.NewCommand(enums.ActionExit, nil)
	}
	cmd := s.Commands[0]
	s.Commands = s.Commands[1:]
	return cmd
}

func (s *ScriptedUI) PollTarget(frame api.Frame) TargetEvent {
	s.Render(frame)
	if len(s.Targets) == 0 {
		return TargetEvent{Kind: TargetCancel}
	}
	ev := s.Targets[0]
	s.Targets = s.Targets[1:]
	return ev
}

func (s *ScriptedUI) Menu(header string, _ []string) (int, bool) {
	s.MenuHeaders = append(s.MenuHeaders, header)
	if len(s.Menus) == 0 {
		return 0, true
	}
	a := s.Menus[0]
	s.Menus = s.Menus[1:]
	return a.Choice, a.OK
}

func (s *ScriptedUI) MessageBox(text string) {
	s.Boxes = append(s.Boxes, text)
}

func (s *ScriptedUI) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
}
