package actions

import (
	"errors"

	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
)

var errNothingHere = errors.New("there is nothing here to pick up")

// HandlePickup подбирает предмет под игроком.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	player := ctx.Player()
	if !player.Alive {
		return handlers.EmptyResult(), nil
	}

	idx := systems.ItemAt(*ctx.Entities, player.Pos)
	if idx < 0 {
		return handlers.EmptyResult(), errNothingHere
	}

	es, msg, err := systems.TryPickup(ctx.Game, *ctx.Entities, idx)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	*ctx.Entities = es
	return handlers.Took(msg, systems.PickupMessageColor), nil
}
