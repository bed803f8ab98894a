package actions

import (
	"fmt"

	"randroom/internal/engine/handlers"
	"randroom/internal/systems"
)

// HandleCharacter показывает окно характеристик. Ход не тратится.
func HandleCharacter(ctx handlers.Context) (handlers.Result, error) {
	player := ctx.Player()
	if player.Fighter == nil {
		return handlers.EmptyResult(), nil
	}

	ctx.UI.MessageBox(CharacterSheet(ctx))
	return handlers.EmptyResult(), nil
}

// CharacterSheet - текст окна характеристик.
func CharacterSheet(ctx handlers.Context) string {
	g, player := ctx.Game, ctx.Player()
	return fmt.Sprintf(
		"Character information\n\nLevel: %d\nExperience: %d\nExperience to level up: %d\n\nMaximum HP: %d\nAttack: %d\nDefense: %d",
		player.Level,
		player.Fighter.XP,
		systems.LevelUpXP(player.Level),
		systems.MaxHP(g, player),
		systems.Power(g, player),
		systems.Defense(g, player),
	)
}

// HandleFullscreen переключает полноэкранный режим.
func HandleFullscreen(ctx handlers.Context) (handlers.Result, error) {
	ctx.UI.ToggleFullscreen()
	return handlers.EmptyResult(), nil
}

// HandleExit завершает сессию (с сохранением).
func HandleExit(_ handlers.Context) (handlers.Result, error) {
	return handlers.Result{Turn: handlers.Exit}, nil
}
