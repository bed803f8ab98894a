package actions

import (
	"randroom/internal/engine/handlers"
)

// HandleWait - пропуск хода.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Player().Alive {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{Turn: handlers.TookTurn}, nil
}
