package actions

import (
	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
	"randroom/pkg/api"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse применяет предмет инвентаря. Отмена не тратит ход.
func HandleUse(ctx handlers.Context, p api.InventoryPayload) (handlers.Result, error) {
	if !ctx.Player().Alive {
		return handlers.EmptyResult(), nil
	}

	effectCtx := &systems.EffectContext{
		Game:     ctx.Game,
		Entities: *ctx.Entities,
		Sight:    ctx.Sight,
		Targeter: ctx.Targeter,
	}
	result := systems.UseItem(p.Index, effectCtx)

	logger.Log.WithFields(logrus.Fields{
		"component": "use_handler",
		"index":     p.Index,
		"result":    result,
	}).Debug("Item use resolved")

	if result == systems.Cancelled {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{Turn: handlers.TookTurn}, nil
}
