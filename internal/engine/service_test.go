package engine

import (
	"context"
	"os"
	"testing"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/infrastructure/storage"
	"randroom/pkg/api"

	"github.com/google/go-cmp/cmp"
)

// walkScript - прогулка по уровню с ожиданием, чтобы монстры успели подойти.
func walkScript() []domain.Command {
	var cmds []domain.Command
	for _, d := range [][2]int{{1, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, -1}} {
		cmds = append(cmds, cmdMove(d[0], d[1]))
	}
	for range 10 {
		cmds = append(cmds, cmd(enums.ActionWait))
	}
	return append(cmds, cmd(enums.ActionPickup), cmd(enums.ActionCharacter))
}

func TestReplay_ReproducesGame(t *testing.T) {
	const seed = 1234

	rec := NewRecordingUI(&ScriptedUI{Commands: walkScript()}, seed)
	original := NewGame(testConfig(seed), rec, nil)
	if err := original.Play(context.Background()); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	// Реплей проходит через бинарный формат, как при загрузке с диска
	dir := t.TempDir()
	replays, err := storage.NewReplayService(dir)
	if err != nil {
		t.Fatalf("NewReplayService() error = %v", err)
	}
	path, err := replays.Save(rec.Replay)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := replays.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	svc := NewService(testConfig(999), nil, nil, nil)
	replayed, err := svc.RunReplay(context.Background(), loaded)
	if err != nil {
		t.Fatalf("RunReplay() error = %v", err)
	}

	if replayed.Seed != seed {
		t.Errorf("replay seed = %d, want %d", replayed.Seed, seed)
	}
	if diff := cmp.Diff(original.Game(), replayed.Game()); diff != "" {
		t.Errorf("replayed game differs (-original +replayed):\n%s", diff)
	}
	if diff := cmp.Diff(original.Entities(), replayed.Entities()); diff != "" {
		t.Errorf("replayed entities differ (-original +replayed):\n%s", diff)
	}
}

func TestRecordingUI_SkipsEmptyTargetEvents(t *testing.T) {
	inner := &ScriptedUI{Targets: []TargetEvent{
		{Kind: TargetNone},
		{Kind: TargetClick, X: 3, Y: 4},
	}}
	rec := NewRecordingUI(inner, 1)

	for range 3 {
		rec.PollTarget(api.Frame{})
	}

	want := []storage.ReplayEvent{
		{Kind: storage.EventTarget, X: 3, Y: 4, OK: true},
		{Kind: storage.EventTarget, OK: false},
	}
	if diff := cmp.Diff(want, rec.Replay.Events); diff != "" {
		t.Errorf("recorded events mismatch (-want +got):\n%s", diff)
	}
}

func TestMainMenu(t *testing.T) {
	quit := MenuAnswer{Choice: MenuQuit, OK: true}

	t.Run("continue without save", func(t *testing.T) {
		ui := &ScriptedUI{Menus: []MenuAnswer{{Choice: MenuContinue, OK: true}, quit}}
		svc := NewService(testConfig(42), fileStore(t), nil, nil)

		if err := svc.MainMenu(context.Background(), ui); err != nil {
			t.Fatalf("MainMenu() error = %v", err)
		}
		if len(ui.Boxes) != 1 || ui.Boxes[0] != NoSaveMessage {
			t.Errorf("boxes = %q, want no-save message", ui.Boxes)
		}
		if ui.Frames != 0 {
			t.Errorf("frames = %d, want none", ui.Frames)
		}
	})

	t.Run("cancel quits", func(t *testing.T) {
		ui := &ScriptedUI{Menus: []MenuAnswer{{OK: false}}}
		svc := NewService(testConfig(42), fileStore(t), nil, nil)

		if err := svc.MainMenu(context.Background(), ui); err != nil {
			t.Fatalf("MainMenu() error = %v", err)
		}
		if len(ui.MenuHeaders) != 1 {
			t.Errorf("menus shown = %d, want 1", len(ui.MenuHeaders))
		}
	})

	t.Run("new game then continue", func(t *testing.T) {
		store := fileStore(t)
		dir := t.TempDir()
		replays, err := storage.NewReplayService(dir)
		if err != nil {
			t.Fatalf("NewReplayService() error = %v", err)
		}
		sink := &frameCounter{}
		ui := &ScriptedUI{
			Commands: []domain.Command{cmd(enums.ActionWait), cmd(enums.ActionExit), cmd(enums.ActionExit)},
			Menus: []MenuAnswer{
				{Choice: MenuNewGame, OK: true},
				{Choice: MenuContinue, OK: true},
				quit,
			},
		}
		svc := NewService(testConfig(42), store, replays, sink)

		if err := svc.MainMenu(context.Background(), ui); err != nil {
			t.Fatalf("MainMenu() error = %v", err)
		}

		if len(ui.Boxes) != 0 {
			t.Errorf("unexpected boxes: %q", ui.Boxes)
		}
		// Новая партия: 2 кадра, продолженная: 1
		if sink.frames != 3 {
			t.Errorf("published frames = %d, want 3", sink.frames)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("replay files = %d, want 1", len(entries))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ui := &ScriptedUI{}
		svc := NewService(testConfig(42), fileStore(t), nil, nil)

		if err := svc.MainMenu(ctx, ui); err != nil {
			t.Fatalf("MainMenu() error = %v", err)
		}
		if len(ui.MenuHeaders) != 0 {
			t.Errorf("menu shown after cancel")
		}
	})
}

type frameCounter struct {
	frames int
}

func (f *frameCounter) Publish(api.Frame) { f.frames++ }
