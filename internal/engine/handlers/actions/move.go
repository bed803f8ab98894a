package actions

import (
	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
	"randroom/pkg/api"
)

// HandleMove - шаг или атака в направлении. Мертвый игрок не ходит.
// Упереться в стену тоже значит потратить ход.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if !ctx.Player().Alive {
		return handlers.EmptyResult(), nil
	}

	systems.MoveOrAttack(ctx.Game, *ctx.Entities, p.Dx, p.Dy)
	return handlers.Result{Turn: handlers.TookTurn}, nil
}
