package handlers

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"randroom/internal/domain"
	"randroom/pkg/api"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Discard()

	os.Exit(m.Run())
}

type fakeFrontend struct {
	choice  int
	ok      bool
	options []string
	menus   int
}

func (f *fakeFrontend) Menu(_ string, options []string) (int, bool) {
	f.menus++
	f.options = options
	return f.choice, f.ok
}
func (f *fakeFrontend) MessageBox(string) {}
func (f *fakeFrontend) ToggleFullscreen() {}

func newContext(ui Frontend, inventory ...*domain.Entity) Context {
	es := domain.Entities{dungeon.NewPlayer()}
	g := domain.NewGame(domain.NewMap(5, 5))
	g.Inventory = inventory
	return Context{Game: g, Entities: &es, UI: ui}
}

func TestWithPayload(t *testing.T) {
	var got api.DirectionPayload
	h := WithPayload(func(_ Context, p api.DirectionPayload) (Result, error) {
		got = p
		return Took("", 0), nil
	})

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", `{"dx":1,"dy":-1}`, ""},
		{"broken json", `{"dx":`, "invalid payload format"},
		{"zero vector", `{"dx":0,"dy":0}`, "validation failed"},
		{"too far", `{"dx":2,"dy":0}`, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h(newContext(&fakeFrontend{}), json.RawMessage(tt.raw))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Turn != TookTurn || got.Dx != 1 || got.Dy != -1 {
				t.Errorf("result = %+v, payload = %+v", res, got)
			}
		})
	}
}

func TestWithInventoryChoice(t *testing.T) {
	var picked []int
	h := WithInventoryChoice("header", func(_ Context, p api.InventoryPayload) (Result, error) {
		picked = append(picked, p.Index)
		return Took("", 0), nil
	})

	dagger := dungeon.StartingKit()[0]
	potion := dungeon.HealingPotion.SpawnEntity(0, 0)

	tests := []struct {
		name      string
		inventory []*domain.Entity
		ui        *fakeFrontend
		raw       string
		want      []int
		options   []string
	}{
		{
			name:      "menu choice",
			inventory: []*domain.Entity{dagger, potion},
			ui:        &fakeFrontend{choice: 1, ok: true},
			want:      []int{1},
			options:   []string{"dagger (on left hand)", "healing potion"},
		},
		{
			name:      "menu cancelled",
			inventory: []*domain.Entity{dagger},
			ui:        &fakeFrontend{ok: false},
			options:   []string{"dagger (on left hand)"},
		},
		{
			name:    "empty inventory",
			ui:      &fakeFrontend{choice: 0, ok: true},
			options: []string{"Inventory is empty."},
		},
		{
			name:      "explicit payload",
			inventory: []*domain.Entity{dagger},
			ui:        &fakeFrontend{},
			raw:       `{"index":0}`,
			want:      []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picked = nil
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}

			res, err := h(newContext(tt.ui, tt.inventory...), raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(picked) != len(tt.want) || (len(picked) > 0 && picked[0] != tt.want[0]) {
				t.Errorf("handler got %v, want %v", picked, tt.want)
			}
			if len(tt.want) == 0 && res.Turn != DidntTakeTurn {
				t.Errorf("turn = %v, want %v", res.Turn, DidntTakeTurn)
			}
			if strings.Join(tt.ui.options, "|") != strings.Join(tt.options, "|") {
				t.Errorf("menu options = %q, want %q", tt.ui.options, tt.options)
			}
		})
	}
}

func TestTurnResult_String(t *testing.T) {
	for res, want := range map[TurnResult]string{
		DidntTakeTurn: "DIDNT_TAKE_TURN",
		TookTurn:      "TOOK_TURN",
		Exit:          "EXIT",
	} {
		if got := res.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", res, got, want)
		}
	}
}
