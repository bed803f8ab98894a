package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"
	"randroom/pkg/utils"

	"github.com/google/go-cmp/cmp"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Discard()

	os.Exit(m.Run())
}

// playedState - сгенерированный уровень с следами игры:
// исследованные клетки, сбитый с толку монстр, инвентарь, журнал.
func playedState(t *testing.T) (*domain.Game, domain.Entities) {
	t.Helper()

	m, es := dungeon.Generate(domain.Entities{dungeon.NewPlayer()}, 3, utils.NewRNG(42), dungeon.DefaultParams())
	g := domain.NewGame(m)
	g.DungeonLevel = 3
	g.Inventory = dungeon.StartingKit()
	g.Log("Welcome stranger!", types.ColorRed)

	p := es.Player()
	m.MarkExplored(p.Pos.X, p.Pos.Y)
	p.Fighter.XP = 120
	p.Level = 2

	for _, e := range es {
		if e.IsMonster() {
			e.AI = domain.Confuse(e.AI, 4)
			break
		}
	}
	return g, es
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sq, err := OpenSQLite(filepath.Join(dir, "saves.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(dir, "nested", "savegame.json")),
		"sqlite": sq,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Load(ctx); !errors.Is(err, ErrNoSave) {
				t.Fatalf("empty store: err = %v, want ErrNoSave", err)
			}

			g, es := playedState(t)
			if err := store.Save(ctx, NewSaveRecord(g, es)); err != nil {
				t.Fatalf("Save: %v", err)
			}

			rec, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(g, rec.Game); diff != "" {
				t.Errorf("game mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(es, rec.Entities); diff != "" {
				t.Errorf("entities mismatch (-want +got):\n%s", diff)
			}
			if rec.Entities[domain.PlayerIndex].Name != "player" {
				t.Error("index 0 is not the player after load")
			}

			// Повторное сохранение перезаписывает слот
			g.DungeonLevel = 4
			if err := store.Save(ctx, NewSaveRecord(g, es)); err != nil {
				t.Fatalf("second Save: %v", err)
			}
			rec, err = store.Load(ctx)
			if err != nil || rec.Game.DungeonLevel != 4 {
				t.Errorf("overwrite: level = %v, err = %v", rec, err)
			}
		})
	}
}

func TestStore_RejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	g, es := playedState(t)
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"))

	monsterFirst := domain.Entities{es[len(es)-1]}

	withMap := func(m *domain.Map) *SaveRecord {
		gc := *g
		gc.Map = m
		return NewSaveRecord(&gc, es)
	}
	shortColumn := make([][]domain.Tile, len(g.Map.Tiles))
	copy(shortColumn, g.Map.Tiles)
	shortColumn[5] = shortColumn[5][:10]

	nullItem := *g
	nullItem.Inventory = append([]*domain.Entity{nil}, g.Inventory...)

	tests := []struct {
		name string
		rec  *SaveRecord
	}{
		{"no game", &SaveRecord{Entities: es}},
		{"no entities", NewSaveRecord(g, nil)},
		{"player not first", NewSaveRecord(g, monsterFirst)},
		{"null player", NewSaveRecord(g, domain.Entities{nil})},
		{"null monster", NewSaveRecord(g, append(domain.Entities{es[0], nil}, es[1:]...))},
		{"null inventory item", NewSaveRecord(&nullItem, es)},
		{"zero sized map", withMap(&domain.Map{})},
		{"map without tiles", withMap(&domain.Map{Width: g.Map.Width, Height: g.Map.Height})},
		{"short map column", withMap(&domain.Map{Width: g.Map.Width, Height: g.Map.Height, Tiles: shortColumn})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Save(ctx, tt.rec); !errors.Is(err, ErrCorruptSave) {
				t.Errorf("err = %v, want ErrCorruptSave", err)
			}
		})
	}
}

func TestFileStore_LoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"garbage", "{not json", ErrCorruptSave},
		{"old format", `{"version": 0}`, ErrIncompatibleSave},
		{"missing state", `{"version": 1, "entities": []}`, ErrCorruptSave},
		{"null player", `{"version": 1, "game": {"map": {"width": 1, "height": 1, "tiles": [[{}]]}, "messages": {}}, "entities": [null]}`, ErrCorruptSave},
		{"empty tiles", `{"version": 1, "game": {"map": {"width": 80, "height": 45, "tiles": []}, "messages": {}}, "entities": [{}]}`, ErrCorruptSave},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewFileStore(path).Load(ctx); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if s, err := Open("file", filepath.Join(dir, "a.json")); err != nil {
		t.Errorf("file backend: %v", err)
	} else {
		_ = s.Close()
	}
	if s, err := Open("sqlite", filepath.Join(dir, "a.db")); err != nil {
		t.Errorf("sqlite backend: %v", err)
	} else {
		_ = s.Close()
	}
	if _, err := Open("postgres", ""); err == nil {
		t.Error("unknown backend must fail")
	}
}

func sampleReplay() *Replay {
	return &Replay{
		Seed:      0xDEADBEEF,
		Timestamp: 1760000000,
		Events: []ReplayEvent{
			{Kind: EventMenu, Choice: 0, OK: true},
			{Kind: EventCommand, Action: enums.ActionMove, Payload: []byte(`{"dx":1,"dy":0}`)},
			{Kind: EventCommand, Action: enums.ActionWait},
			{Kind: EventCommand, Action: enums.ActionUse, Payload: []byte(`{"index":0}`)},
			{Kind: EventTarget, X: 12, Y: 7, OK: true},
			{Kind: EventTarget, OK: false},
			{Kind: EventMenu, Choice: -1},
			{Kind: EventCommand, Action: enums.ActionExit},
		},
	}
}

func TestReplay_BinaryRoundTrip(t *testing.T) {
	want := sampleReplay()

	var buf bytes.Buffer
	if err := WriteReplay(&buf, want); err != nil {
		t.Fatalf("WriteReplay: %v", err)
	}
	got, err := ReadReplay(&buf)
	if err != nil {
		t.Fatalf("ReadReplay: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay_InvalidInput(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		var buf bytes.Buffer
		_ = WriteReplay(&buf, sampleReplay())
		raw := buf.Bytes()
		copy(raw, "CDRP")
		if _, err := ReadReplay(bytes.NewReader(raw)); err == nil {
			t.Error("expected magic error")
		}
	})

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		_ = WriteReplay(&buf, sampleReplay())
		raw := buf.Bytes()[:buf.Len()-3]
		if _, err := ReadReplay(bytes.NewReader(raw)); err == nil {
			t.Error("expected read error")
		}
	})
}

func TestReplayService(t *testing.T) {
	svc, err := NewReplayService(filepath.Join(t.TempDir(), "replays"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := svc.Save(sampleReplay())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ReplayExt {
		t.Errorf("path = %s", path)
	}

	got, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(sampleReplay(), got); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}
