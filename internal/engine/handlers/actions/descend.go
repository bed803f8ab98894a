package actions

import (
	"errors"

	"randroom/internal/core/types"
	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

var errNoStairs = errors.New("there are no stairs here")

// HandleDescend спускает игрока по лестнице: отдых на половину
// максимального здоровья, затем новый уровень.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	player := ctx.Player()
	if !player.Alive {
		return handlers.EmptyResult(), nil
	}

	stairs := ctx.Entities.IndexAt(player.Pos.X, player.Pos.Y, dungeon.IsStairs)
	if stairs < 0 {
		return handlers.EmptyResult(), errNoStairs
	}

	g := ctx.Game
	oldLevel := g.DungeonLevel

	// 1. Отдых
	g.Log("You take a moment to rest, and recover your strength.", types.ColorViolet)
	systems.Heal(g, player, systems.MaxHP(g, player)/2)

	// 2. Новый уровень
	g.Log("After a rare moment of peace, you descend deeper into the heart of the dungeon...", types.ColorRed)
	g.DungeonLevel++
	ctx.Levels.NextLevel()

	logger.Log.WithFields(logrus.Fields{
		"component": "descend_handler",
		"from":      oldLevel,
		"to":        g.DungeonLevel,
		"entities":  len(*ctx.Entities),
	}).Info("Player descended")

	return handlers.Result{Turn: handlers.DidntTakeTurn}, nil
}
