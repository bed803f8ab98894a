package engine

import (
	"time"

	"randroom/internal/domain"
	"randroom/internal/infrastructure/storage"
	"randroom/pkg/api"
)

// RecordingUI пропускает ввод через себя и записывает его в реплей.
type RecordingUI struct {
	UI
	Replay *storage.Replay
}

// NewRecordingUI начинает запись партии с зерном seed.
func NewRecordingUI(ui UI, seed uint64) *RecordingUI {
	return &RecordingUI{
		UI: ui,
		Replay: &storage.Replay{
			Seed:      seed,
			Timestamp: time.Now().Unix(),
		},
	}
}

func (r *RecordingUI) ReadCommand() domain.Command {
	cmd := r.UI.ReadCommand()
	r.Replay.Events = append(r.Replay.Events, storage.ReplayEvent{
		Kind:    storage.EventCommand,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
	return cmd
}

func (r *RecordingUI) PollTarget(frame api.Frame) TargetEvent {
	ev := r.UI.PollTarget(frame)
	// Пустые события (движение мыши) на симуляцию не влияют
	if ev.Kind != TargetNone {
		r.Replay.Events = append(r.Replay.Events, storage.ReplayEvent{
			Kind: storage.EventTarget,
			X:    ev.X,
			Y:    ev.Y,
			OK:   ev.Kind == TargetClick,
		})
	}
	return ev
}

func (r *RecordingUI) Menu(header string, options []string) (int, bool) {
	choice, ok := r.UI.Menu(header, options)
	r.Replay.Events = append(r.Replay.Events, storage.ReplayEvent{
		Kind:   storage.EventMenu,
		Choice: choice,
		OK:     ok,
	})
	return choice, ok
}

// NewReplayUI раскладывает записанный ввод по очередям скриптового интерфейса.
// Каждый вид ввода читается симуляцией в том же порядке, что и при записи.
func NewReplayUI(r *storage.Replay) *ScriptedUI {
	ui := &ScriptedUI{}
	for _, ev := range r.Events {
		switch ev.Kind {
		case storage.EventCommand:
			ui.Commands = append(ui.Commands, domain.Command{Action: ev.Action, Payload: ev.Payload})
		case storage.EventTarget:
			kind := TargetCancel
			if ev.OK {
				kind = TargetClick
			}
			ui.Targets = append(ui.Targets, TargetEvent{Kind: kind, X: ev.X, Y: ev.Y})
		case storage.EventMenu:
			ui.Menus = append(ui.Menus, MenuAnswer{Choice: ev.Choice, OK: ev.OK})
		}
	}
	return ui
}
