package systems

import (
	"testing"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/utils"
)

func TestTakeTurn_Basic(t *testing.T) {
	rng := utils.NewRNG(1)

	t.Run("invisible monster waits", func(t *testing.T) {
		g := newTestGame(10, 10)
		orc := newOrc(2, 2)
		es := domain.Entities{newPlayer(6, 6), orc}

		TakeTurn(g, es, 1, seeNothing, rng)
		if orc.Pos != (domain.Position{X: 2, Y: 2}) {
			t.Errorf("orc moved to %v", orc.Pos)
		}
	})

	t.Run("visible monster approaches", func(t *testing.T) {
		g := newTestGame(10, 10)
		orc := newOrc(5, 3)
		es := domain.Entities{newPlayer(5, 6), orc}

		TakeTurn(g, es, 1, seeAll, rng)
		if orc.Pos != (domain.Position{X: 5, Y: 4}) {
			t.Errorf("orc at %v, want (5,4)", orc.Pos)
		}
	})

	t.Run("diagonal blocked slides along the axis", func(t *testing.T) {
		g := newTestGame(10, 10)
		g.Map.Tiles[3][3] = domain.WallTile()
		orc := newOrc(2, 2)
		es := domain.Entities{newPlayer(6, 4), orc}

		TakeTurn(g, es, 1, seeAll, rng)
		if orc.Pos != (domain.Position{X: 3, Y: 2}) {
			t.Errorf("orc at %v, want (3,2)", orc.Pos)
		}
	})

	t.Run("adjacent monster attacks", func(t *testing.T) {
		g := newTestGame(10, 10)
		player := newPlayer(4, 4)
		es := domain.Entities{player, newOrc(5, 5)}

		TakeTurn(g, es, 1, seeAll, rng)
		// сила 4 - защита 1
		if player.Fighter.HP != 97 {
			t.Errorf("player HP = %d, want 97", player.Fighter.HP)
		}
	})

	t.Run("dead player is not attacked", func(t *testing.T) {
		g := newTestGame(10, 10)
		player := newPlayer(4, 4)
		player.Alive = false
		es := domain.Entities{player, newOrc(5, 4)}

		TakeTurn(g, es, 1, seeAll, rng)
		if player.Fighter.HP != 100 {
			t.Error("corpse of the player was attacked")
		}
	})

	t.Run("dead monster is skipped", func(t *testing.T) {
		g := newTestGame(10, 10)
		orc := newOrc(2, 2)
		orc.Alive = false
		es := domain.Entities{newPlayer(6, 6), orc}

		TakeTurn(g, es, 1, seeAll, rng)
		if orc.Pos != (domain.Position{X: 2, Y: 2}) {
			t.Error("dead monster moved")
		}
	})
}

func TestTakeTurn_ConfusedRevertsAfterCountdown(t *testing.T) {
	g := newTestGame(20, 20)
	orc := newOrc(10, 10)
	basic := orc.AI
	orc.AI = domain.Confuse(basic, 3)
	player := newPlayer(11, 10)
	es := domain.Entities{player, orc}
	rng := utils.NewRNG(5)

	for turn := 1; turn <= 3; turn++ {
		before := orc.Pos
		TakeTurn(g, es, 1, seeAll, rng)

		dx, dy := orc.Pos.X-before.X, orc.Pos.Y-before.Y
		if abs(dx) > 1 || abs(dy) > 1 {
			t.Fatalf("turn %d: moved by (%d,%d)", turn, dx, dy)
		}
		if player.Fighter.HP != 100 {
			t.Fatalf("turn %d: confused monster attacked the player", turn)
		}
		if turn < 3 && orc.AI.Kind != enums.AIConfused {
			t.Fatalf("turn %d: reverted too early", turn)
		}
	}

	if orc.AI != basic {
		t.Errorf("AI after countdown = %+v, want the original basic AI", orc.AI)
	}
	if lastMessage(g) != "The orc is no longer confused!" {
		t.Errorf("message = %q", lastMessage(g))
	}
}
