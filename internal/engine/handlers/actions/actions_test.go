package actions

import (
	"os"
	"strings"
	"testing"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/internal/engine/handlers"
	"randroom/pkg/api"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Discard()

	os.Exit(m.Run())
}

type fakeUI struct {
	boxes []string
}

func (f *fakeUI) Menu(string, []string) (int, bool) { return 0, false }
func (f *fakeUI) MessageBox(text string)            { f.boxes = append(f.boxes, text) }
func (f *fakeUI) ToggleFullscreen()                 {}

type levelCounter struct {
	calls int
}

func (l *levelCounter) NextLevel() { l.calls++ }

func testContext(t *testing.T) (handlers.Context, *fakeUI, *levelCounter) {
	t.Helper()
	m := domain.NewMap(10, 10)
	for x := 1; x < 9; x++ {
		for y := 1; y < 9; y++ {
			m.SetFloor(x, y)
		}
	}
	player := dungeon.NewPlayer()
	player.SetPos(4, 4)
	es := domain.Entities{player}

	g := domain.NewGame(m)
	g.Inventory = dungeon.StartingKit()

	ui, levels := &fakeUI{}, &levelCounter{}
	return handlers.Context{Game: g, Entities: &es, UI: ui, Levels: levels}, ui, levels
}

func newStairs(x, y int) *domain.Entity {
	return domain.NewEntity(x, y, types.MakeGlyph(types.ColorWhite, dungeon.StairsChar), "stairs", false)
}

func TestHandleDescend(t *testing.T) {
	t.Run("on stairs", func(t *testing.T) {
		ctx, _, levels := testContext(t)
		*ctx.Entities = append(*ctx.Entities, newStairs(4, 4))
		ctx.Player().Fighter.HP = 20

		res, err := HandleDescend(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Turn != handlers.DidntTakeTurn {
			t.Errorf("turn = %v, want %v", res.Turn, handlers.DidntTakeTurn)
		}
		if levels.calls != 1 || ctx.Game.DungeonLevel != 2 {
			t.Errorf("next level calls = %d, depth = %d", levels.calls, ctx.Game.DungeonLevel)
		}
		if hp := ctx.Player().Fighter.HP; hp != 70 {
			t.Errorf("HP = %d, want 70", hp)
		}
	})

	t.Run("no stairs", func(t *testing.T) {
		ctx, _, levels := testContext(t)
		*ctx.Entities = append(*ctx.Entities, newStairs(5, 5))

		if _, err := HandleDescend(ctx); err != errNoStairs {
			t.Fatalf("err = %v, want %v", err, errNoStairs)
		}
		if levels.calls != 0 {
			t.Error("level switched without stairs")
		}
	})
}

func TestDeadPlayerActions(t *testing.T) {
	tests := []struct {
		name string
		run  func(ctx handlers.Context) (handlers.Result, error)
	}{
		{"move", func(ctx handlers.Context) (handlers.Result, error) {
			return HandleMove(ctx, api.DirectionPayload{Dx: 1})
		}},
		{"pickup", HandlePickup},
		{"use", func(ctx handlers.Context) (handlers.Result, error) {
			return HandleUse(ctx, api.InventoryPayload{Index: 0})
		}},
		{"drop", func(ctx handlers.Context) (handlers.Result, error) {
			return HandleDrop(ctx, api.InventoryPayload{Index: 0})
		}},
		{"descend", HandleDescend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := testContext(t)
			player := ctx.Player()
			player.Alive = false
			start := player.Pos

			res, err := tt.run(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Turn != handlers.DidntTakeTurn {
				t.Errorf("turn = %v, want %v", res.Turn, handlers.DidntTakeTurn)
			}
			if player.Pos != start || len(ctx.Game.Inventory) != 1 {
				t.Error("dead player changed the world")
			}
		})
	}
}

func TestHandleWait(t *testing.T) {
	ctx, _, _ := testContext(t)
	res, err := HandleWait(ctx)
	if err != nil || res.Turn != handlers.TookTurn {
		t.Errorf("HandleWait() = %+v, %v", res, err)
	}
}

func TestHandleCharacter(t *testing.T) {
	ctx, ui, _ := testContext(t)
	ctx.Player().Fighter.XP = 120

	if _, err := HandleCharacter(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ui.boxes) != 1 {
		t.Fatalf("boxes = %d, want 1", len(ui.boxes))
	}

	for _, line := range []string{"Level: 1", "Experience: 120", "Maximum HP: 100", "Attack: 4", "Defense: 1"} {
		if !strings.Contains(ui.boxes[0], line) {
			t.Errorf("sheet misses %q:\n%s", line, ui.boxes[0])
		}
	}
}

func TestRegistry_CoversActions(t *testing.T) {
	reg := Registry()
	for _, name := range []string{"MOVE", "WAIT", "PICKUP", "USE", "DROP", "DESCEND", "CHARACTER", "FULLSCREEN", "EXIT"} {
		t.Run(name, func(t *testing.T) {
			found := false
			for action := range reg {
				if action.String() == name {
					found = true
				}
			}
			if !found {
				t.Errorf("no handler for %s", name)
			}
		})
	}
}
