package actions

import (
	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
	"randroom/pkg/api"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleDrop кладет предмет из инвентаря под ноги игроку.
func HandleDrop(ctx handlers.Context, p api.InventoryPayload) (handlers.Result, error) {
	if !ctx.Player().Alive {
		return handlers.EmptyResult(), nil
	}

	es, msg, err := systems.TryDrop(ctx.Game, *ctx.Entities, p.Index)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "drop_handler",
			"index":     p.Index,
		}).WithError(err).Warn("Drop failed")
		return handlers.EmptyResult(), err
	}
	*ctx.Entities = es
	return handlers.Took(msg, systems.DropMessageColor), nil
}
